package model

import "codekar_backend/internals/constants"

type Track struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Prize struct {
	Position string `json:"position"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type SponsorTier struct {
	Tier     string   `json:"tier"`
	Sponsors []string `json:"sponsors"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is one marketing section of the site. Details is nil when the
// section is configured hidden.
type Section struct {
	Name    string      `json:"name"`
	Shown   bool        `json:"shown"`
	Details interface{} `json:"details"`
}

var TrackDetails = []Track{
	{Title: "Education", Description: "Build intelligent solutions using cutting-edge AI, deep learning, and machine learning technologies."},
	{Title: "Entertainment", Description: "Design smart entertainment solutions using AI, deep learning, and machine learning to transform gaming, media, music, and digital experiences."},
	{Title: "AI agents and automation", Description: "Develop innovative solutions using Artificial Intelligence and Machine Learning to transform ideas into intelligent systems."},
	{Title: "Big Data and Mass Communication", Description: "Design innovative platforms powered by Big Data to improve information dissemination, media analytics, and large-scale communication systems."},
	{Title: "Core AI & ML", Description: "Develop innovative solutions using Artificial Intelligence and Machine Learning to transform ideas into intelligent systems."},
	{Title: "Cutting Agents & Automation", Description: "Develop innovative solutions using Artificial Intelligence and Machine Learning to transform ideas into intelligent systems."},
}

var PrizeDetails = []Prize{
	{Position: "Winner"},
	{Position: "1st Runner-Up"},
	{Position: "2nd Runner-Up"},
}

var TeamDetails = []TeamMember{
	{Name: "Mohammad Tanveer", Role: "Lead Organizer"},
	{Name: "Kamalesh", Role: "Technical Head"},
	{Name: "Akash Kumar Singh", Role: "Marketing Lead"},
	{Name: "Madhan Kumar", Role: "Sponsorship Head"},
}

var SponsorDetails = []SponsorTier{
	{Tier: "Title Sponsor", Sponsors: []string{"TechGiant Corp"}},
	{Tier: "Gold Sponsors", Sponsors: []string{"CloudFirst", "DataFlow Inc", "AI Ventures"}},
	{Tier: "Silver Sponsors", Sponsors: []string{"DevTools Pro", "SecureNet", "WebScale", "CodeCraft"}},
	{Tier: "Community Partners", Sponsors: []string{"DevCommunity", "TechTalks", "CodeClub", "HackersUnite", "StartupHub", "InnovateLab"}},
}

var FAQDetails = []FAQItem{
	{Question: "What is this hackathon about?", Answer: "This is an online hackathon for college students where participants solve real-world problems using technology and innovation within a limited time."},
	{Question: "Who can participate?", Answer: "Any college student (UG / PG / Diploma) from any stream or institution is eligible to participate."},
	{Question: "Is this hackathon online or offline?", Answer: "The hackathon is completely online. All submissions, evaluations, and announcements will be done virtually."},
	{Question: "Can I participate individually or as a team?", Answer: "You can participate either individually or as a team of up to 4 members."},
	{Question: "How many members are allowed in a team?", Answer: "Each team must have 3 or 4 members."},
	{Question: "Can team members be from different colleges?", Answer: "No, team members must be from the same college."},
	{Question: "Will participants receive certificates?", Answer: "Yes, participants will receive certificates for their participation."},
	{Question: "Is the registration fee refundable?", Answer: "No, the registration fee is non-refundable."},
}

// Details returns a section's detail payload, or nil for unknown sections.
func Details(name string) interface{} {
	switch name {
	case constants.SectionTracks:
		return TrackDetails
	case constants.SectionPrizes:
		return PrizeDetails
	case constants.SectionTeam:
		return TeamDetails
	case constants.SectionSponsors:
		return SponsorDetails
	case constants.SectionFAQ:
		return FAQDetails
	default:
		return nil
	}
}
