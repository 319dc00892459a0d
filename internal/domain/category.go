package domain

type Category struct {
	ID   uint
	Name string
}
