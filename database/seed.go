package database

import (
	"github.com/rs/zerolog/log"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

// Seed populates the store with a default profile and a few example rows so
// the site is non-empty on first deploy. It is an idempotent no-op whenever
// a profile row already exists.
func (d Database) Seed() error {
	existing, err := d.profileRepo.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	log.Info().Msg("No profile found, seeding default site content")

	profile := models.Profile{
		Name:        "Alex Researcher",
		Title:       "PhD Candidate in Computer Science",
		Institution: "University of Technology",
		Bio:         "I am a PhD candidate researching AI and Human-Computer Interaction. My work focuses on making generative models more controllable and interpretable.",
		Email:       "alex@example.edu",
		GithubURL:   strPtr("https://github.com"),
		ScholarURL:  strPtr("https://scholar.google.com"),
		TwitterURL:  strPtr("https://twitter.com"),
		LinkedinURL: strPtr("https://linkedin.com"),
		CvURL:       strPtr("#"),
		ImageURL:    strPtr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3"),
	}
	if _, err := d.profileRepo.Upsert(&profile); err != nil {
		return err
	}

	publications := []models.Publication{
		{
			Title:      "Generative Models for Creative Workflows",
			Authors:    "A. Researcher, B. Advisor",
			Venue:      "NeurIPS 2024",
			Year:       2024,
			Abstract:   strPtr("We propose a new framework for integrating generative models into creative tools..."),
			IsSelected: true,
		},
		{
			Title:      "Understanding User Intent in AI Assistants",
			Authors:    "A. Researcher, C. Colleague",
			Venue:      "CHI 2023",
			Year:       2023,
			Abstract:   strPtr("A study on how users formulate prompts..."),
			IsSelected: true,
		},
	}
	for i := range publications {
		if err := d.publicationRepo.Add(&publications[i]); err != nil {
			return err
		}
	}

	project := models.Project{
		Title:        "OpenGen",
		Description:  "An open-source library for generative art.",
		Technologies: strPtr("Python, PyTorch"),
		ImageURL:     strPtr("https://images.unsplash.com/photo-1550751827-4bd374c3f58b"),
		Link:         strPtr("https://github.com"),
	}
	if err := d.projectRepo.Add(&project); err != nil {
		return err
	}

	news := models.NewsItem{
		Date:    "2024-01-15",
		Content: "Paper accepted to NeurIPS 2024!",
	}
	return d.newsRepo.Add(&news)
}

func strPtr(s string) *string {
	return &s
}
