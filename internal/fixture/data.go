package fixture

import (
	"net/url"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tuniskill/internal/model"
)

// DefaultPassword is the plaintext password of every seeded user.
const DefaultPassword = "password123"

type categorySeed struct {
	name, slug, description, icon, color string
	sortOrder                            int
}

var categorySeeds = []categorySeed{
	{"Web Development", "web-development", "Learn to build modern web applications", "code", "#3B82F6", 1},
	{"Mobile Development", "mobile-development", "Create mobile apps for iOS and Android", "smartphone", "#10B981", 2},
	{"Data Science", "data-science", "Analyze data and build machine learning models", "bar-chart", "#8B5CF6", 3},
	{"Design", "design", "UI/UX design and graphic design courses", "palette", "#F59E0B", 4},
	{"Business", "business", "Business skills and entrepreneurship", "briefcase", "#EF4444", 5},
}

type userSeed struct {
	email, firstName, lastName, userType, role, country, city string
}

var userSeeds = []userSeed{
	{"admin@tuniskill.com", "Admin", "User", model.UserTypeAdmin, model.RoleAdmin, "Tunisia", "Tunis"},
	{"john.doe@example.com", "John", "Doe", model.UserTypeInstructor, model.RoleInstructor, "USA", "New York"},
	{"jane.smith@example.com", "Jane", "Smith", model.UserTypeInstructor, model.RoleInstructor, "UK", "London"},
	{"ahmed.benali@example.com", "Ahmed", "Ben Ali", model.UserTypeInstructor, model.RoleInstructor, "Tunisia", "Sfax"},
	{"student@example.com", "Student", "User", model.UserTypeStudent, model.RoleUser, "Tunisia", "Tunis"},
}

type courseSeed struct {
	title, description, instructor, price, rating string
	students                                      int
	duration, level, category                     string
	featured                                      bool
	requirements, whatYouWillLearn, language      string
	tags                                          []string
}

var courseSeeds = []courseSeed{
	{
		title:            "Complete Web Development Bootcamp",
		description:      "Learn HTML, CSS, JavaScript, React, Node.js, and more in this comprehensive web development course.",
		instructor:       "John Doe",
		price:            "99.99",
		rating:           "4.8",
		students:         1250,
		duration:         "40 hours",
		level:            model.LevelBeginner,
		category:         "Web Development",
		featured:         true,
		requirements:     "Basic computer skills, No programming experience required",
		whatYouWillLearn: "HTML5 and CSS3, JavaScript ES6+, React.js, Node.js and Express, MongoDB, Git and GitHub",
		language:         "en",
		tags:             []string{"html", "css", "javascript", "react", "nodejs"},
	},
	{
		title:            "React Native Mobile App Development",
		description:      "Build cross-platform mobile applications using React Native and JavaScript.",
		instructor:       "Jane Smith",
		price:            "149.99",
		rating:           "4.6",
		students:         890,
		duration:         "35 hours",
		level:            model.LevelIntermediate,
		category:         "Mobile Development",
		featured:         true,
		requirements:     "Basic JavaScript knowledge, React.js fundamentals",
		whatYouWillLearn: "React Native fundamentals, Navigation, State management, API integration, Publishing to app stores",
		language:         "en",
		tags:             []string{"react-native", "mobile", "javascript", "ios", "android"},
	},
	{
		title:            "Data Science with Python",
		description:      "Master data analysis, visualization, and machine learning with Python.",
		instructor:       "Ahmed Ben Ali",
		price:            "129.99",
		rating:           "4.7",
		students:         567,
		duration:         "50 hours",
		level:            model.LevelIntermediate,
		category:         "Data Science",
		featured:         false,
		requirements:     "Basic Python knowledge, High school mathematics",
		whatYouWillLearn: "Pandas and NumPy, Data visualization with Matplotlib, Machine learning with Scikit-learn, Statistical analysis",
		language:         "en",
		tags:             []string{"python", "data-science", "machine-learning", "pandas", "matplotlib"},
	},
	{
		title:            "UI/UX Design Fundamentals",
		description:      "Learn the principles of user interface and user experience design.",
		instructor:       "Jane Smith",
		price:            "79.99",
		rating:           "4.5",
		students:         432,
		duration:         "25 hours",
		level:            model.LevelBeginner,
		category:         "Design",
		featured:         false,
		requirements:     "No prior design experience required, Access to design software (Figma recommended)",
		whatYouWillLearn: "Design principles, User research methods, Wireframing and prototyping, Figma mastery, Design systems",
		language:         "en",
		tags:             []string{"ui", "ux", "design", "figma", "prototyping"},
	},
	{
		title:            "Digital Marketing Mastery",
		description:      "Complete guide to digital marketing including SEO, social media, and paid advertising.",
		instructor:       "John Doe",
		price:            "89.99",
		rating:           "4.4",
		students:         678,
		duration:         "30 hours",
		level:            model.LevelBeginner,
		category:         "Business",
		featured:         true,
		requirements:     "Basic computer skills, Interest in marketing",
		whatYouWillLearn: "SEO optimization, Social media marketing, Google Ads, Email marketing, Analytics and reporting",
		language:         "en",
		tags:             []string{"marketing", "seo", "social-media", "google-ads", "analytics"},
	},
	{
		title:            "Advanced JavaScript Concepts",
		description:      "Deep dive into advanced JavaScript concepts including closures, prototypes, and async programming.",
		instructor:       "Ahmed Ben Ali",
		price:            "119.99",
		rating:           "4.9",
		students:         345,
		duration:         "28 hours",
		level:            model.LevelAdvanced,
		category:         "Web Development",
		featured:         false,
		requirements:     "Solid JavaScript fundamentals, ES6+ knowledge",
		whatYouWillLearn: "Closures and scope, Prototypes and inheritance, Async/await and Promises, Design patterns, Performance optimization",
		language:         "en",
		tags:             []string{"javascript", "advanced", "async", "closures", "prototypes"},
	},
}

// Categories builds the seed categories. All of them are roots.
func Categories() []*model.Category {
	out := make([]*model.Category, 0, len(categorySeeds))
	for _, s := range categorySeeds {
		c := model.NewCategory(s.name, s.slug)
		c.Description = strPtr(s.description)
		c.Icon = strPtr(s.icon)
		c.Color = strPtr(s.color)
		c.SortOrder = s.sortOrder
		out = append(out, c)
	}
	return out
}

// Users builds the seed users without password hashes.
func Users() []*model.User {
	out := make([]*model.User, 0, len(userSeeds))
	for _, s := range userSeeds {
		u := model.NewUser(s.email)
		u.FirstName = s.firstName
		u.LastName = s.lastName
		u.UserType = s.userType
		u.Roles = datatypes.JSONSlice[string]{s.role}
		u.Country = strPtr(s.country)
		u.City = strPtr(s.city)
		u.IsVerified = true
		out = append(out, u)
	}
	return out
}

// Courses builds the seed courses starting from the NewCourse defaults.
func Courses() []*model.Course {
	out := make([]*model.Course, 0, len(courseSeeds))
	for _, s := range courseSeeds {
		c := model.NewCourse()
		c.Title = s.title
		c.Description = s.description
		c.Instructor = s.instructor
		c.Price = decimal.RequireFromString(s.price)
		c.Rating = decimal.RequireFromString(s.rating)
		c.Students = s.students
		c.Duration = s.duration
		c.Level = s.level
		c.Category = s.category
		c.IsFeatured = s.featured
		c.Requirements = strPtr(s.requirements)
		c.WhatYouWillLearn = strPtr(s.whatYouWillLearn)
		c.Language = s.language
		c.Tags = datatypes.JSONSlice[string](append([]string(nil), s.tags...))
		c.Thumbnail = strPtr("https://via.placeholder.com/400x300?text=" + url.QueryEscape(s.title))
		out = append(out, c)
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
