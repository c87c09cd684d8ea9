package main

// Entry is one row of the education or experience sections.
type Entry struct {
	Title        string
	Organization string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

var Education = []Entry{
	{
		Title:        "Ph.D. in Robotics",
		Organization: "Carnegie Mellon University",
		StartDate:    "Aug 2017",
		EndDate:      "May 2022",
		LogoPath:     "images/cmu-logo.png",
		BulletPoints: []string{
			"Thesis: Learning Manipulation Skills from Sparse Demonstrations",
			"NSF Graduate Research Fellowship",
		},
	},
	{
		Title:        "B.S. in Computer Science",
		Organization: "University of Washington",
		StartDate:    "Sept 2013",
		EndDate:      "June 2017",
		LogoPath:     "images/uw-logo.png",
		BulletPoints: []string{
			"Graduated summa cum laude",
			"Senior project: vision-based grasp detection for a low-cost arm",
		},
	},
}

var Experience = []Entry{
	{
		Title:        "Assistant Professor",
		Organization: "Robot Learning Lab, University of Michigan",
		StartDate:    "Sept 2023",
		EndDate:      "Present",
		LogoPath:     "images/umich-logo.png",
		BulletPoints: []string{
			"Lead a group of six Ph.D. students working on dexterous manipulation",
			"Teach ROB 599: Robot Learning, a graduate seminar of 40 students",
		},
	},
	{
		Title:        "Postdoctoral Researcher",
		Organization: "Stanford AI Lab",
		StartDate:    "July 2022",
		EndDate:      "Aug 2023",
		LogoPath:     "images/stanford-logo.png",
		BulletPoints: []string{
			"Developed tactile-conditioned diffusion policies for assembly",
			"Co-organized the CoRL 2023 workshop on contact-rich manipulation",
		},
	},
	{
		Title:        "Research Intern",
		Organization: "Google DeepMind Robotics",
		StartDate:    "May 2020",
		EndDate:      "Aug 2020",
		LogoPath:     "images/deepmind-logo.png",
		BulletPoints: []string{
			"Built an offline skill discovery pipeline over 80k hours of play data",
		},
	},
}
