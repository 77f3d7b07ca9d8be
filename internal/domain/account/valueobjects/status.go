package valueobjects

type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusDeleted   AccountStatus = "deleted"
)

func (s AccountStatus) String() string {
	return string(s)
}

func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

func (s AccountStatus) CanLogin() bool {
	return s == StatusActive
}
