package domain

import "strconv"

// Sex is the client's sex as stored and exchanged over the API.
type Sex int

const (
	SexMale   Sex = 0
	SexFemale Sex = 1
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return "Sex(" + strconv.Itoa(int(s)) + ")"
}

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// ClientSort is the ordering applied to client listings. Always ascending.
type ClientSort string

const (
	ClientSortID        ClientSort = "id"
	ClientSortEmail     ClientSort = "email"
	ClientSortFirstName ClientSort = "firstname"
	ClientSortLastName  ClientSort = "lastname"
)

func (s ClientSort) String() string { return string(s) }

func (s ClientSort) IsValid() bool {
	switch s {
	case ClientSortID, ClientSortEmail, ClientSortFirstName, ClientSortLastName:
		return true
	}
	return false
}

// ParseClientSort maps a raw sort key to a ClientSort. Matching is exact;
// anything unrecognised falls back to ClientSortID.
func ParseClientSort(raw string) ClientSort {
	s := ClientSort(raw)
	if s.IsValid() {
		return s
	}
	return ClientSortID
}

// Well-known role names.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
