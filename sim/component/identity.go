package component

import "strings"

// Honor is the tri-state "honored guest" flag.
type Honor int

const (
	HonorUnknown Honor = iota
	HonorYes
	HonorNo
)

func (h Honor) String() string {
	switch h {
	case HonorYes:
		return "true"
	case HonorNo:
		return "false"
	default:
		return "unknown"
	}
}

// ParseHonor accepts true/false/yes/no; anything else is unknown.
func ParseHonor(s string) Honor {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return HonorYes
	case "false", "no", "n", "0":
		return HonorNo
	default:
		return HonorUnknown
	}
}

type Identity struct {
	Name           string
	Rank           string
	InitiationDate string
	GrandOfficer   Honor
	UserID         string
}

// Complete reports whether the fields the identity gate checks are present.
func (id Identity) Complete() bool {
	return strings.TrimSpace(id.Name) != "" &&
		strings.TrimSpace(id.Rank) != "" &&
		strings.TrimSpace(id.InitiationDate) != ""
}
