package productdto

type AddProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	SellerID    string
}

type ListProductsInput struct {
	SellerID   string
	Categories []string
}
