package main

import (
	"context"
	"errors"

	"github.com/career-compass/careercompass/internal/aptitude"
	"github.com/career-compass/careercompass/internal/college"
)

// seedDemoData installs the default aptitude test and a starter catalog so
// the app is usable right after first boot. Existing records are left alone.
func seedDemoData(ctx context.Context, tests aptitude.Store, colleges college.Store) error {
	if _, err := tests.GetTestWithKeys(ctx, defaultTest.ID); errors.Is(err, aptitude.ErrNotFound) {
		if err := tests.PutTest(ctx, defaultTest); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	existing, err := colleges.List(ctx, college.Filter{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range sampleColleges {
		if _, err := colleges.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

var defaultTest = aptitude.Test{
	ID:          "default",
	Title:       "General Aptitude Test",
	Description: "This test evaluates your verbal, quantitative, and general knowledge skills",
	DurationMin: 60,
	Questions: []aptitude.Question{
		// Verbal
		{
			Text:    `Choose the synonym of "Eloquent":`,
			Options: []string{"Silent", "Articulate", "Confused", "Boring"},
			Correct: 1, Section: aptitude.SectionVerbal,
		},
		{
			Text:    "Fill in the blank: She was _____ by the news.",
			Options: []string{"Shocked", "Shocking", "Shock", "Shockingly"},
			Correct: 0, Section: aptitude.SectionVerbal,
		},
		{
			Text:    `Choose the antonym of "Abundance":`,
			Options: []string{"Plenty", "Scarcity", "Wealth", "Prosperity"},
			Correct: 1, Section: aptitude.SectionVerbal,
		},
		{
			Text:    "Identify the correctly spelled word:",
			Options: []string{"Occassion", "Occasion", "Ocasion", "Ocassion"},
			Correct: 1, Section: aptitude.SectionVerbal,
		},
		{
			Text:    `What is the meaning of "Ephemeral"?`,
			Options: []string{"Permanent", "Temporary", "Eternal", "Ancient"},
			Correct: 1, Section: aptitude.SectionVerbal,
		},
		// Quantitative
		{
			Text:    "If 2x + 5 = 15, what is x?",
			Options: []string{"5", "10", "7.5", "2.5"},
			Correct: 0, Section: aptitude.SectionQuantitative,
		},
		{
			Text:    "What is 15% of 200?",
			Options: []string{"20", "25", "30", "35"},
			Correct: 2, Section: aptitude.SectionQuantitative,
		},
		{
			Text:    "If a train travels 120 km in 2 hours, what is its speed?",
			Options: []string{"40 km/h", "50 km/h", "60 km/h", "70 km/h"},
			Correct: 2, Section: aptitude.SectionQuantitative,
		},
		{
			Text:    "What is the next number in the sequence: 2, 4, 8, 16, ?",
			Options: []string{"20", "24", "32", "64"},
			Correct: 2, Section: aptitude.SectionQuantitative,
		},
		{
			Text:    "If the area of a square is 64 sq cm, what is its side length?",
			Options: []string{"6 cm", "8 cm", "10 cm", "12 cm"},
			Correct: 1, Section: aptitude.SectionQuantitative,
		},
		// General knowledge
		{
			Text:    "Who is known as the Father of Computers?",
			Options: []string{"Charles Babbage", "Alan Turing", "Bill Gates", "Steve Jobs"},
			Correct: 0, Section: aptitude.SectionGeneralKnowledge,
		},
		{
			Text:    "What is the capital of Australia?",
			Options: []string{"Sydney", "Melbourne", "Canberra", "Perth"},
			Correct: 2, Section: aptitude.SectionGeneralKnowledge,
		},
		{
			Text:    "Which planet is known as the Red Planet?",
			Options: []string{"Venus", "Mars", "Jupiter", "Saturn"},
			Correct: 1, Section: aptitude.SectionGeneralKnowledge,
		},
		{
			Text:    `Who wrote "Romeo and Juliet"?`,
			Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
			Correct: 1, Section: aptitude.SectionGeneralKnowledge,
		},
		{
			Text:    "What is the chemical symbol for Gold?",
			Options: []string{"Go", "Gd", "Au", "Ag"},
			Correct: 2, Section: aptitude.SectionGeneralKnowledge,
		},
	},
}

var sampleColleges = []college.College{
	{
		Name:        "Indian Institute of Technology Delhi",
		Location:    "INDIA",
		City:        "New Delhi",
		Fees:        200000,
		Ranking:     1,
		Courses:     []string{"Computer Science", "Mechanical Engineering", "Electrical Engineering", "Civil Engineering"},
		Facilities:  []string{"Modern Library", "Research Labs", "Sports Complex", "Hostel", "Cafeteria"},
		Description: "IIT Delhi is one of the premier engineering institutions in India.",
		Eligibility: college.Eligibility{MinCGPA: 7.5, RequiredExam: "JEE Advanced", MinScore: "100/360"},
	},
	{
		Name:        "Indian Institute of Technology Bombay",
		Location:    "INDIA",
		City:        "Mumbai",
		Fees:        210000,
		Ranking:     2,
		Courses:     []string{"Computer Science", "Aerospace Engineering", "Chemical Engineering", "Metallurgical Engineering"},
		Facilities:  []string{"State-of-art Labs", "Library", "Sports Facilities", "Hostels", "Medical Center"},
		Description: "IIT Bombay is known for its world-class education and research.",
		Eligibility: college.Eligibility{MinCGPA: 7.5, RequiredExam: "JEE Advanced", MinScore: "95/360"},
	},
	{
		Name:        "Massachusetts Institute of Technology",
		Location:    "ABROAD",
		City:        "Cambridge, USA",
		Fees:        4000000,
		Ranking:     1,
		Courses:     []string{"Computer Science", "Physics", "Mathematics", "Engineering"},
		Facilities:  []string{"Research Centers", "Innovation Labs", "Libraries", "Dormitories"},
		Description: "MIT is a world leader in science and technology education.",
		Eligibility: college.Eligibility{MinCGPA: 9.0, RequiredExam: "SAT", MinScore: "1500/1600"},
	},
}
