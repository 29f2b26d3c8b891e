package resume

// Sample returns the starter resume shown to new users of the editor.
func Sample() Resume {
	return Resume{
		Personal: Personal{
			Name:      "John Doe",
			Title:     "Senior Software Engineer",
			Email:     "john.doe@example.com",
			Phone:     "(123) 456-7890",
			Location:  "San Francisco, CA",
			Website:   "johndoe.com",
			Portfolio: "portfolio.johndoe.com",
			GitHub:    "github.com/johndoe",
			LinkedIn:  "linkedin.com/in/johndoe",
			Summary: "Experienced software engineer with over 8 years of experience in developing scalable web applications. " +
				"Proficient in JavaScript, TypeScript, React, and Node.js. Passionate about creating efficient, maintainable code " +
				"and mentoring junior developers.",
		},
		Experience: []Experience{
			{
				ID:        "exp1",
				Title:     "Senior Software Engineer",
				Company:   "Tech Solutions Inc.",
				Location:  "San Francisco, CA",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Current:   true,
				Description: "• Led a team of 5 developers to deliver a new product feature that increased user engagement by 25%\n" +
					"• Implemented CI/CD pipeline that reduced deployment time by 40%\n" +
					"• Refactored legacy codebase, improving application performance by 30%\n" +
					"• Mentored junior developers and conducted code reviews",
			},
			{
				ID:        "exp2",
				Title:     "Software Engineer",
				Company:   "Web Innovators LLC",
				Location:  "Austin, TX",
				StartDate: "Mar 2017",
				EndDate:   "Dec 2019",
				Description: "• Developed responsive web applications using React and Node.js\n" +
					"• Collaborated with UX designers to implement user-friendly interfaces\n" +
					"• Optimized database queries, reducing load times by 50%\n" +
					"• Participated in agile development processes",
			},
		},
		Education: []Education{
			{
				ID:          "edu1",
				Institution: "University of California, Berkeley",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				Location:    "Berkeley, CA",
				StartDate:   "Aug 2013",
				EndDate:     "May 2017",
				Description: "• GPA: 3.8/4.0\n" +
					"• Relevant coursework: Data Structures, Algorithms, Database Systems\n" +
					"• Senior thesis: Machine Learning Applications in Web Development",
			},
		},
		Projects: []Project{
			{
				ID:   "proj1",
				Name: "E-commerce Platform",
				Description: "Developed a full-stack e-commerce platform with React, Node.js, and MongoDB. " +
					"Implemented features like user authentication, product search, shopping cart, and payment processing.",
				GitHubLink:   "github.com/johndoe/ecommerce",
				LiveLink:     "ecommerce-demo.johndoe.com",
				Technologies: "React, Node.js, Express, MongoDB, Stripe API",
				StartDate:    "Jun 2021",
				EndDate:      "Dec 2021",
			},
			{
				ID:   "proj2",
				Name: "Task Management App",
				Description: "Created a task management application with drag-and-drop functionality, " +
					"user authentication, and real-time updates using Socket.io.",
				GitHubLink:   "github.com/johndoe/taskmanager",
				LiveLink:     "taskmanager.johndoe.com",
				Technologies: "React, TypeScript, Firebase, Socket.io",
				StartDate:    "Jan 2021",
				EndDate:      "Apr 2021",
			},
		},
		Skills: []Skill{
			{ID: "skill1", Name: "JavaScript"},
			{ID: "skill2", Name: "TypeScript"},
			{ID: "skill3", Name: "React"},
			{ID: "skill4", Name: "Node.js"},
			{ID: "skill5", Name: "Express"},
			{ID: "skill6", Name: "MongoDB"},
			{ID: "skill7", Name: "SQL"},
			{ID: "skill8", Name: "Git"},
			{ID: "skill9", Name: "AWS"},
		},
		AdditionalSections: []AdditionalSection{
			{
				ID:      "additional1",
				Title:   "Certifications",
				Content: "• AWS Certified Solutions Architect\n• MongoDB Certified Developer\n• Google Cloud Professional Developer",
			},
		},
	}
}
