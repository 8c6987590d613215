package inbox

// SeedDemo fills the store with a few sample threads so the dashboard views
// have content on a fresh run. Built entirely through the public operations.
func SeedDemo(s *Store) {
	m1 := s.Submit("John Doe", "john@example.com", "Web Development Inquiry",
		"Hi! I'm interested in your web development services. Can you help me build a portfolio website?", "demo-1")
	m2 := s.Submit("John Doe", "john@example.com", "Web Development Inquiry",
		"I have a budget of around $2000 and need it done within 2 weeks.", "demo-1")
	s.MarkRead(m1.ID)
	s.MarkRead(m2.ID)

	s.Submit("Sarah Wilson", "sarah.wilson@company.com", "Laravel Project",
		"Hello! I saw your portfolio and I'm impressed with your Laravel skills. We have a project that might interest you.", "demo-2")

	m4 := s.Submit("Mike Johnson", "mike.j@startup.io", "React Developer Needed",
		"Hi! We're a startup looking for a React developer. Are you available for freelance work?", "demo-3")
	m5 := s.Submit("Mike Johnson", "mike.j@startup.io", "React Developer Needed",
		"The project involves building a dashboard with real-time data visualization.", "demo-3")
	s.MarkRead(m4.ID)
	s.MarkRead(m5.ID)
}
