package models

import "github.com/MKhiriev/go-user-cards/internal/utils"

// IDGenerator produces identifiers for newly constructed users.
// Implementations must never hand out the same value twice within a run.
type IDGenerator interface {
	Generate() string
}

// Contacts groups the address and reachability attributes of a [User].
type Contacts struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Avatar holds the two picture references used by the rendering surfaces.
type Avatar struct {
	// Medium is shown on the card.
	Medium string `json:"medium"`
	// Large is shown in the popup.
	Large string `json:"large"`
}

// User represents one displayed person.
//
// All fields are filled once by [NewUser] and treated as read-only
// afterwards. Name parts are stored exactly as received; formatting happens
// on read in [User.FullName].
type User struct {
	// ID is unique for the lifetime of the process and is not persisted.
	ID string `json:"id"`

	TitleName string `json:"title"`
	FirstName string `json:"first"`
	LastName  string `json:"last"`

	Contacts Contacts `json:"contacts"`
	Avatar   Avatar   `json:"avatar"`
}

// NewUser builds a [User] from the structured API fields and assigns it an
// identifier taken from gen.
func NewUser(gen IDGenerator, name RawName, location RawLocation, email, phone string, picture RawPicture) User {
	return User{
		ID:        gen.Generate(),
		TitleName: name.Title,
		FirstName: name.First,
		LastName:  name.Last,
		Contacts: Contacts{
			Street: string(location.Street),
			City:   location.City,
			State:  location.State,
			Email:  email,
			Phone:  phone,
		},
		Avatar: Avatar{
			Medium: picture.Medium,
			Large:  picture.Large,
		},
	}
}

// NewUserFromRaw is a shorthand for [NewUser] over a whole API record.
func NewUserFromRaw(gen IDGenerator, raw RawUser) User {
	return NewUser(gen, raw.Name, raw.Location, raw.Email, raw.Phone, raw.Picture)
}

// FullName returns the display name in the form "Title. First Last" with the
// first letter of every part upper-cased. It is computed on every call.
func (u User) FullName() string {
	return utils.CapitalizeFirst(u.TitleName) + ". " +
		utils.CapitalizeFirst(u.FirstName) + " " +
		utils.CapitalizeFirst(u.LastName)
}

// CompareByFirstName orders users by first name using plain string
// comparison. It returns -1, 0 or 1. Users with equal first names compare
// equal whatever their last names are.
func (u User) CompareByFirstName(other User) int {
	switch {
	case u.FirstName < other.FirstName:
		return -1
	case u.FirstName > other.FirstName:
		return 1
	default:
		return 0
	}
}
