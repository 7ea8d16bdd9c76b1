package userdto

type RegisterInput struct {
	FirstName     string
	LastName      string
	Email         string
	Age           int32
	ContactNumber string
	Password      string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID        string
	FirstName     string
	LastName      string
	Age           int32
	ContactNumber string
	Password      string
}
