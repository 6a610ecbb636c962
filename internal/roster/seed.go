package roster

import "example.com/extracurricular/internal/domain"

// seedActivities builds the fixed Mergington High School activity set the
// service starts from. Participant order is signup order.
func seedActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Soccer Team": {
			Name:            "Soccer Team",
			Description:     "Join our competitive soccer team and participate in inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"james@mergington.edu", "william@mergington.edu"},
		},
		"Basketball Club": {
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play team games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "isabella@mergington.edu"},
		},
		"Art Studio": {
			Name:            "Art Studio",
			Description:     "Explore various art techniques including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "charlotte@mergington.edu"},
		},
		"Drama Club": {
			Name:            "Drama Club",
			Description:     "Develop acting skills and perform in school theater productions",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu", "amelia@mergington.edu"},
		},
		"Debate Team": {
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu", "harper@mergington.edu"},
		},
		"Science Olympiad": {
			Name:            "Science Olympiad",
			Description:     "Compete in science competitions and conduct experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"benjamin@mergington.edu", "evelyn@mergington.edu"},
		},
		"Chess Club": {
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
