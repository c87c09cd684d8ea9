package publications

var all = []Record{
	{
		Year:     2024,
		Venue:    "CoRL",
		Title:    "Learning Dexterous Grasps from Sparse Human Demonstrations",
		Authors:  "Mei Lin, Jonas Weber, Wei Zhang",
		Keywords: []string{"Robot Learning", "Imitation Learning", "Manipulation"},
		Summary:  "A demonstration-efficient grasp policy that generalizes to unseen object geometries from fewer than twenty trajectories.",
		Link:     "https://arxiv.org/abs/2406.01234",
	},
	{
		Year:     2024,
		Venue:    "ICRA",
		Title:    "Tactile-Conditioned Diffusion Policies for Contact-Rich Assembly",
		Authors:  "Mei Lin, Priya Raman, Wei Zhang",
		Keywords: []string{"Diffusion Policy", "Tactile Sensing"},
		Summary:  "Conditions action diffusion on high-resolution tactile images to insert parts with sub-millimetre clearance.",
	},
	{
		Year:     2023,
		Venue:    "NeurIPS",
		Title:    "Offline Skill Discovery with Temporal Contrastive Objectives",
		Authors:  "Daniel Okafor, Mei Lin, Sara Novak",
		Keywords: []string{"Reinforcement Learning", "Representation Learning"},
		Summary:  "Extracts reusable skills from unlabeled play data by contrasting futures across time horizons.",
		Link:     "https://arxiv.org/abs/2310.05678",
	},
	{
		Year:     2023,
		Venue:    "RSS",
		Title:    "Sim-to-Real Transfer of Deformable Object Policies via Domain-Randomized Physics",
		Authors:  "Mei Lin, Tomás Herrera, Wei Zhang",
		Keywords: []string{"Sim-to-Real", "Deformable Objects"},
		Summary:  "Cloth folding policies trained entirely in simulation with randomized material parameters.",
	},
	{
		Year:     2022,
		Venue:    "IROS",
		Title:    "Uncertainty-Aware Visual Servoing for Mobile Manipulators",
		Authors:  "Mei Lin, Kenji Watanabe",
		Keywords: []string{"Visual Servoing", "Uncertainty Estimation"},
		Summary:  "Propagates depth uncertainty into the control law to avoid overshoot near occlusions.",
	},
	{
		Year:     2022,
		Venue:    "ICLR Workshop on Generalizable Policy Learning",
		Title:    "Language-Conditioned Rearrangement with Object-Centric Slots",
		Authors:  "Ana Sousa, Mei Lin, Sara Novak",
		Keywords: []string{"Language Grounding", "Object-Centric Learning"},
		Summary:  "Maps natural language goals to slot-level targets for tabletop rearrangement.",
	},
	{
		Year:     2021,
		Venue:    "Autonomous Robots",
		Title:    "A Benchmark for Long-Horizon Household Tasks",
		Authors:  "Mei Lin, Jonas Weber",
		Keywords: []string{"Benchmarks", "Task Planning"},
		Summary:  "Thirty household tasks with standardized success metrics and scripted baselines.",
	},
}

// All returns the publication list, newest first.
func All() []Record {
	return all
}
