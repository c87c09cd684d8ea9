package main

var (
	AboutMe = `I am a robotics researcher working on how robots can learn manipulation skills from a handful of
	human demonstrations and their own experience. Most of my work sits between machine learning and control:
	imitation learning, tactile sensing, and getting policies trained in simulation to survive contact with
	the real world. Outside the lab I teach a graduate seminar on robot learning and mentor undergraduate
	research projects.`

	ResearchInterests = []string{
		"Robot learning from demonstration",
		"Tactile and multimodal perception",
		"Sim-to-real transfer",
		"Long-horizon task planning",
	}
)

// Project is a portfolio entry on the home page.
type Project struct {
	Name        string
	Description string
	Link        string
	Tags        []string
}

var Projects = []Project{
	{
		Name: "GraspKit",
		Description: `An open-source toolkit for collecting and replaying teleoperated grasp demonstrations,
		with synchronized camera, tactile and joint-state recording.`,
		Link: "https://github.com/meilin-lab/graspkit",
		Tags: []string{"Python", "ROS 2", "Teleoperation"},
	},
	{
		Name: "Household-30",
		Description: `A benchmark suite of thirty long-horizon household tasks with standardized success
		metrics, scripted baselines and a public leaderboard.`,
		Link: "https://github.com/meilin-lab/household-30",
		Tags: []string{"Benchmark", "Simulation"},
	},
	{
		Name: "Tactile Diffusion",
		Description: `Reference implementation of tactile-conditioned diffusion policies for contact-rich
		assembly, including pretrained checkpoints and hardware drivers.`,
		Link: "https://github.com/meilin-lab/tactile-diffusion",
		Tags: []string{"PyTorch", "Diffusion Models"},
	},
	{
		Name: "This Site",
		Description: `A portfolio website built with Go, Gin and HTMX, with a terminal preview of its
		starfield and cursor effects rendered through tcell.`,
		Tags: []string{"Go", "Gin", "HTMX"},
	},
}
