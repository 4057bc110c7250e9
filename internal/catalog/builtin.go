package catalog

func builtinRoles() []Role {
	return []Role{
		{
			Name:   "Forward",
			Accent: "#00E5FF",
			Archetypes: []Archetype{
				{
					Name: "Target", Order: 0,
					Description:   "Dominant aerial presence and reliable hold-up striker.",
					Playstyles:    []string{"Power Shot", "Precision Header"},
					Positions:     []string{"ST", "LW", "RW", "CAM"},
					SkillStars:    5,
					WeakFootStars: 5,
					KeyAttributes: []string{"Shot Power", "Heading Accuracy", "Jumping", "Strength"},
				},
				{
					Name: "Finisher", Order: 1,
					Description:   "Clinical goal-scorer with elite instinct in the box.",
					InspiredBy:    "Alex Morgan",
					Playstyles:    []string{"Finesse Shot", "Acrobatic"},
					Positions:     []string{"ST", "LW", "RW", "CAM"},
					SkillStars:    5,
					WeakFootStars: 5,
					KeyAttributes: []string{"Reactions", "Composure", "Finishing", "Volleys"},
				},
				{
					Name: "Magician", Order: 2,
					Description:   "Creative forward who unlocks defenses in tight spaces.",
					InspiredBy:    "Ronaldinho",
					Playstyles:    []string{"Rapid", "Trickster"},
					Positions:     []string{"ST", "LW", "RW", "CAM", "LM", "RM"},
					SkillStars:    5,
					WeakFootStars: 5,
					KeyAttributes: []string{"Acceleration", "Finishing", "Curve", "Balance"},
				},
			},
		},
		{
			Name:   "Midfielder",
			Accent: "#22C55E",
			Archetypes: []Archetype{
				{
					Name: "Spark", Order: 0,
					Description:   "Excels in short, explosive bursts - getting to the byline and pulling back tantalising crosses for teammates.",
					InspiredBy:    "Luís Figo",
					Playstyles:    []string{"Rapid", "Trickster"},
					Positions:     []string{"LW", "RW", "CAM", "LM", "RM"},
					SkillStars:    5,
					WeakFootStars: 5,
					KeyAttributes: []string{"Acceleration", "Agility", "Ball Control", "Dribbling"},
				},
				{
					Name: "Creator", Order: 1,
					Description:   "Capable of delivering precise and incisive passes that can dismantle even the most organised backlines.",
					InspiredBy:    "Xavi",
					Playstyles:    []string{"Incisive Pass", "Inventive Pass"},
					Positions:     []string{"CAM", "LM", "RM", "CM"},
					SkillStars:    4,
					WeakFootStars: 5,
					KeyAttributes: []string{"Long Pass", "Vision", "Short Pass", "Curve"},
				},
				{
					Name: "Maestro", Order: 2,
					Description:   "Orchestrating the game from deep, this player can unlock a defence to create chances for their forwards.",
					InspiredBy:    "Toni Kroos",
					Playstyles:    []string{"Tiki Taka", "Pinged Pass"},
					Positions:     []string{"CAM", "LM", "RM", "CM", "CDM"},
					SkillStars:    5,
					WeakFootStars: 5,
					KeyAttributes: []string{"Ball Control", "Composure", "Long Pass", "Vision"},
				},
				{
					Name: "Recycler", Order: 3,
					Description:   "This passing machine is critical to taking the ball from the backline and giving it to your most dangerous attackers.",
					InspiredBy:    "Michaël Essien",
					Playstyles:    []string{"Press Proven", "Intercept"},
					Positions:     []string{"CAM", "CM", "CDM", "CB"},
					SkillStars:    4,
					WeakFootStars: 5,
					KeyAttributes: []string{"Long Shots", "Interceptions", "Def. Aware", "Strength"},
				},
			},
		},
		{
			Name:   "Defender",
			Accent: "#EAB308",
			Archetypes: []Archetype{
				{
					Name: "Marauder", Order: 0,
					Description:   "A defensive specialist whose pulsating pace means they're also comfortable and effective going forward.",
					InspiredBy:    "Cafú",
					Playstyles:    []string{"Whipped Pass", "Quick Step"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
				{
					Name: "Engine", Order: 1,
					Description:   "This player's incredible stamina allows them to maintain maximum effort throughout the match.",
					InspiredBy:    "Park Ji Sung",
					Playstyles:    []string{"Jockey", "Relentless"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
				{
					Name: "Boss", Order: 2,
					Description:   "Wins the ball with imposing physicality. Willing to put everything on the line for the team.",
					InspiredBy:    "Nemanja Vidić",
					Playstyles:    []string{"Bruiser", "Aerial Fortress"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
				{
					Name: "Progressor", Order: 3,
					Description:   "A modern centre-back capable of stepping out of the backline to start attacks with progressive passing.",
					InspiredBy:    "Fernando Hierro",
					Playstyles:    []string{"Long Ball Pass", "Anticipate"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
			},
		},
		{
			Name:   "Goalkeeper",
			Accent: "#A855F7",
			Archetypes: []Archetype{
				{
					Name: "Sweeper Keeper", Order: 0,
					Description:   "A modern-day keeper, comfortable with the ball at their feet, and with a high defensive line.",
					InspiredBy:    "Lev Yashin",
					Playstyles:    []string{"Cross Claimer", "1v1 Close Down"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
				{
					Name: "Shot Stopper", Order: 1,
					Description:   "Unphased when faced with an attacker one-on-one, can be relied upon to make difficult saves.",
					Playstyles:    []string{"Footwork", "Far Reach"},
					SkillStars:    3,
					WeakFootStars: 3,
				},
			},
		},
	}
}
