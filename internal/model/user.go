package model

type UserCreate struct {
	FullName    string
	Email       string
	PhoneNumber string
	Photo       string
	PushToken   string
	Notify      bool
}

type User struct {
	ID int64
	UserCreate
}
