package model

// Analysis groups repositories by metadata defect. A repository may appear
// in more than one category; within each category the input order is kept.
type Analysis struct {
	MissingDescription []*Repository
	MissingHomepage    []*Repository
	BrokenHomepage     []*Repository
}

// Total returns the number of defect entries across all categories. A
// repository counted in two categories contributes two.
func (x *Analysis) Total() int {
	return len(x.MissingDescription) + len(x.MissingHomepage) + len(x.BrokenHomepage)
}

// Clean reports whether no defects were found.
func (x *Analysis) Clean() bool {
	return x.Total() == 0
}
