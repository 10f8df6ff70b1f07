package constants

// Member roles. Index 0 of every roster is the leader; the role is derived
// from position, never edited directly.
const (
	RoleLeader = "Leader"
	RoleMember = "Member"
)

const (
	RegistrationTypeIndividual = "individual"
	RegistrationTypeTeam       = "team"
)

// Roster bounds. Individual drafts always hold exactly one member.
const (
	MinTeamMembers = 1
	MaxTeamMembers = 4
)

// Tracks is the closed set of project tracks offered on the site.
var Tracks = []string{
	"Education",
	"Entertainment",
	"AI agents and automation",
	"Big Data and Mass Communication",
	"Core AI & ML",
	"Cutting Agents & Automation",
}

// IsValidTrack reports whether t is one of the offered tracks.
func IsValidTrack(t string) bool {
	for _, v := range Tracks {
		if v == t {
			return true
		}
	}
	return false
}

// Site sections whose detail blocks can be toggled per deployment.
const (
	SectionTracks   = "tracks"
	SectionPrizes   = "prizes"
	SectionSponsors = "sponsors"
	SectionTeam     = "team"
	SectionFAQ      = "faq"
)
