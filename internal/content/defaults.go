package content

var (
	aboutIntro = `I'm a 2nd-year B.Tech student specializing in Artificial Intelligence & Data Science,
	focused on building functional AI systems that solve real-world problems. I enjoy turning data and
	models into complete, usable solutions rather than isolated experiments.`

	aboutBuilder = `With a builder mindset, I focus on end-to-end system development, from data pipelines
	to user-facing applications. I'm passionate about learning by doing, exploring new technologies, and
	currently working on AI-driven solutions for agriculture with real-world impact.`

	focusBody = `My current focus is on developing AI solutions specifically designed for agricultural
	workflows. I'm working on systems that help farmers with crop disease detection, yield prediction, and
	smart advisory systems, all designed to be accessible and practical for real-world use.`

	farmPortal = `A centralized digital farm portal that tracks antimicrobial usage in livestock, automates
	withdrawal period and MRL compliance checks, and integrates veterinary digital prescriptions. The platform
	provides real-time dashboards for farmers, veterinarians, and government authorities, enables QR-based
	traceability for safe animal products, and supports mobile, voice-based data entry to promote responsible
	antimicrobial use, food safety, and AMR mitigation.`

	farmPortalProblem = `The lack of a centralized digital system to monitor antimicrobial usage in livestock
	leads to improper drug use, MRL violations, and increased antimicrobial resistance. A secure, real-time
	platform is needed to track antimicrobial use, ensure compliance with withdrawal periods and MRL standards,
	and support responsible antimicrobial stewardship and food safety in India.`

	biosecurity = `Create a mobile-friendly digital platform that helps farmers monitor biosecurity, detect
	diseases early, receive alerts, and access veterinary support, reducing outbreaks and losses in pig and
	poultry farms.`

	biosecurityProblem = `This increases disease risks and economic losses in pig and poultry production.
	A simple, mobile digital solution is urgently needed.`

	cropYield = `Developed a machine learning model that analyzes historical agricultural datasets to predict
	expected crop yield. The model is designed to be scalable and integrable into real-world applications such
	as dashboards or mobile apps.`

	cropYieldProblem = `Farmers often lack accurate, data-driven methods to estimate crop yield in advance,
	making planning and resource allocation inefficient.`
)

// Default returns a fresh copy of the built-in site content.
func Default() *Site {
	return &Site{
		Title: "Tharun R | AI & Data Science",
		Hero: Hero{
			Badge: "B.Tech • AI & Data Science • 2nd Year",
			Name:  "Tharun R",
			Role:  "Artificial Intelligence & Data Science Student",
			Taglines: []string{
				"Building functional AI systems for real-world impact",
				"Transforming data into intelligent solutions",
				"Engineering the future of agriculture with AI",
			},
		},
		Links: []Link{
			{Label: "Email", Icon: "mail", Href: "mailto:tharun0714@gmail.com"},
			{Label: "GitHub", Icon: "github", Href: "https://github.com/Tharunr07"},
			{Label: "LinkedIn", Icon: "linkedin", Href: "https://www.linkedin.com/in/tharunr07/"},
		},
		About: About{
			Header: Header{
				Badge:  "NEURAL PROFILE",
				Title:  "Building",
				Accent: "Functional AI",
				Suffix: "for Real Impact",
			},
			Paragraphs: []string{aboutIntro, aboutBuilder},
			Values: []Card{
				{Icon: "brain", Title: "Core Focus", Signal: "AI at the center", Description: "Machine learning & intelligent systems at the core"},
				{Icon: "code", Title: "End-to-End", Signal: "Idea → Deployment", Description: "Building complete solutions from backend to frontend"},
				{Icon: "lightbulb", Title: "Impact-Driven", Signal: "Real-world problems", Description: "Focused on real-world applications & impact"},
				{Icon: "rocket", Title: "Execution-Oriented", Signal: "Shipping matters", Description: "Learning by doing & shipping functional products"},
			},
		},
		Skills: Skills{
			Header: Header{
				Badge:  "SYSTEM CAPABILITIES",
				Title:  "Languages &",
				Accent: "Tools",
				Blurb:  "A versatile toolkit spanning AI, web, mobile, and systems programming",
			},
			Categories: []SkillCategory{
				{Title: "AI & Data Science", Icon: "database", Gradient: "from-cyan-500 to-blue-500", Glow: "bg-cyan-500/20",
					Skills: []string{"Python", "Machine Learning", "MySQL", "MongoDB"}},
				{Title: "Web & Backend", Icon: "globe", Gradient: "from-green-500 to-emerald-500", Glow: "bg-green-500/20",
					Skills: []string{"Java", "Spring Boot", "JavaScript", "React"}},
				{Title: "Mobile Development", Icon: "smartphone", Gradient: "from-purple-500 to-pink-500", Glow: "bg-purple-500/20",
					Skills: []string{"Flutter", "Dart", "Mobile UI/UX"}},
				{Title: "Core Engineering", Icon: "cpu", Gradient: "from-orange-500 to-red-500", Glow: "bg-orange-500/20",
					Skills: []string{"C", "C++", "Data Structures", "Algorithms"}},
			},
		},
		Projects: Projects{
			Header: Header{
				Badge:  "AI LAB",
				Title:  "Featured",
				Accent: "Work",
				Blurb:  "Real-world projects demonstrating end-to-end AI and full-stack development",
			},
			Items: []Project{
				{
					Title:       "Digital Farm Portal for Monitoring Livestock MRL and Antimicrobial Usage",
					Description: farmPortal,
					Problem:     farmPortalProblem,
					Tech:        []string{"Dart", "Python", "NoSQL"},
					Icon:        "leaf",
					Featured:    true,
					Repo:        "https://github.com/Tharunr07/ABC",
				},
				{
					Title:       "Digital Biosecurity Portal for Pig and Poultry Farms",
					Description: biosecurity,
					Problem:     biosecurityProblem,
					Tech:        []string{"Python", "Dart", "SQL", "FastAPI"},
					Icon:        "bot",
					Repo:        "https://github.com/Tharunr07/DFM",
				},
				{
					Title:       "Data Analytics AI-Based Crop Yield Prediction System",
					Description: cropYield,
					Problem:     cropYieldProblem,
					Tech:        []string{"Python", "SQL", "Java", "Javascript"},
					Icon:        "bar-chart",
					Repo:        "https://github.com",
				},
			},
		},
		Focus: Focus{
			Header: Header{
				Badge:  "TRAINING IN PROGRESS",
				Title:  "AI for",
				Accent: "Agriculture",
			},
			Title:    "Building for Farmers",
			Subtitle: "Functional AI that makes a real difference",
			Body:     focusBody,
			Points: []Card{
				{Icon: "target", Title: "The Goal", Description: "Democratize access to AI-powered agricultural insights for small and medium-scale farmers"},
				{Icon: "trending-up", Title: "The Impact", Description: "Increase crop yields, reduce losses, and enable data-driven farming decisions"},
			},
		},
		Contact: Contact{
			Header: Header{
				Badge:  "COMMUNICATION INTERFACE",
				Title:  "Let's",
				Accent: "Connect",
				Blurb:  "Open to internship opportunities and open-source collaborations. Let's build something impactful together.",
			},
			Availability: "Available for internships",
		},
	}
}
