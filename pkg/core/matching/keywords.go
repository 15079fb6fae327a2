package matching

// Keyword taxonomies for the required-skills and required-experience rules.
// These are tuning data, not engine logic: keywords deliberately overlap
// across categories (e.g. mechanical/technical terms), and category order
// doubles as the tie-break order in TopCategory.

// RequiredSkillsTaxonomy categorizes role required-skills text.
func RequiredSkillsTaxonomy() []Category {
	return []Category{
		{
			Name: "BASIC COMPUTER SKILLS",
			Keywords: []string{
				"computer skills", "basic computer skills", "email", "websites",
				"spreadsheets", "word", "excel", "online forms", "competent computer skills",
			},
		},
		{
			Name: "PROFICIENT USE OF OFFICE MATERIALS",
			Keywords: []string{
				"word", "excel", "printers", "copiers", "office software",
				"office technology", "spreadsheets", "proficient use of office software",
			},
		},
		{
			Name: "PROGRAMMING PROFICIENCY",
			Keywords: []string{
				"programming", "c++", "java", "python", "labview", "programming proficiency",
				"computer proficiency", "proficient use of", "proficiency in",
			},
		},
		{
			Name: "PHOTO/VIDEO PROCESSING SOFTWARE SKILLS",
			Keywords: []string{
				"photo processing", "video processing", "photo processing software",
				"shooting indoor", "low light", "fast-paced environment", "photography",
				"video editing", "image processing",
			},
		},
		{
			Name: "MECHANICAL/TECHNICAL SKILLS",
			Keywords: []string{
				"mechanical", "technical", "robot inspection", "tools", "mechanical skills",
				"technical skills", "mechanical/technical", "basic mechanical",
				"technical experience", "mechanical aptitude", "electrical aptitude",
				"game rules", "robot control", "diagnostics",
			},
		},
		{
			Name: "ADVANCED MACHINE SHOP SKILLS",
			Keywords: []string{
				"welding", "milling", "lathes", "machinist", "welder", "machine shop",
				"vertical milling machine", "engine lathes", "torches", "drill press",
				"saws", "tig welder", "advanced machine shop", "mechanical/technical skills",
			},
		},
		{
			Name: "CONTROL SYSTEMS & DIAGNOSTICS",
			Keywords: []string{
				"control systems", "diagnostics", "fms", "electronics", "field management system",
				"field electronics", "diagnostic tools", "robot control system",
				"control systems & diagnostics", "electrical", "electronic systems",
			},
		},
	}
}

// RequiredExperienceTaxonomy categorizes role required-experience text.
func RequiredExperienceTaxonomy() []Category {
	return []Category{
		{
			Name: "FRC CONTROL SYSTEM EXPERIENCE",
			Keywords: []string{
				"frc control system", "hands-on frc control system", "control system experience",
				"diagnostic tools", "first robotics competition control system",
			},
		},
		{
			Name: "FIELD MANAGEMENT SYSTEM EXPERIENCE",
			Keywords: []string{
				"field management system", "fms", "game field", "field electronics",
				"field mechanical", "field electrical",
			},
		},
		{
			Name: "FRC REFEREE EXPERIENCE",
			Keywords: []string{
				"frc referee", "referee experience", "prior years of first robotics competition referee",
				"referee", "refereeing",
			},
		},
		{
			Name: "FRC JUDGE EXPERIENCE",
			Keywords: []string{
				"judge", "frc judge", "judge at frc event", "judging experience",
				"years as a judge",
			},
		},
		{
			Name: "ROBOT BUILD EXPERIENCE",
			Keywords: []string{
				"robot build experience", "team robot build experience", "first robot build experience",
				"robot build", "build experience", "current season experience",
			},
		},
		{
			Name: "MACHINE SHOP EXPERIENCE",
			Keywords: []string{
				"machine tools", "variety of machine tools", "experience machinist",
				"experienced machinist", "welder experience", "significant machine shop experience",
				"machinist/welder experience",
			},
		},
		{
			Name: "FIRST SAFETY KNOWLEDGE",
			Keywords: []string{
				"first safety principles", "safety principles", "knowledge of first safety",
				"thorough knowledge of first safety",
			},
		},
		{
			Name: "MANAGEMENT/SUPERVISION EXPERIENCE",
			Keywords: []string{
				"supervise", "manage", "evaluate volunteers", "volunteer management",
				"event management", "able to supervise", "supervision experience",
			},
		},
		{
			Name: "GAME RULES KNOWLEDGE",
			Keywords: []string{
				"game rules", "event rules", "safety rules", "game & event rules",
				"game and safety rules",
			},
		},
	}
}
