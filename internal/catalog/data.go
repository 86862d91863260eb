package catalog

import (
	"github.com/pathwise/career-fit-engine/internal/domain"
	"github.com/pathwise/career-fit-engine/internal/vocab"
)

// BuiltIn returns the default role catalog. Each profile is deep-copied so
// callers can never mutate the shared data, even through the criteria maps.
func BuiltIn() []domain.CareerProfile {
	out := make([]domain.CareerProfile, len(builtIn))
	for i, p := range builtIn {
		out[i] = p.Clone()
	}
	return out
}

// Legacy single-answer question ids. These predate the trait vocabulary and
// carry free-form answer levels instead of vocabulary tokens.
const (
	QuestionSkillsTechnical = "skills_technical"
	QuestionEducationLevel  = "education_level"
	QuestionExperienceLevel = "experience_level"
	QuestionWorkEnvironment = "work_environment"
)

func simple(technical, education, experience, environment []string) map[string]domain.SimpleCriterion {
	return map[string]domain.SimpleCriterion{
		QuestionSkillsTechnical: {Accepted: technical, Weight: 0.4},
		QuestionEducationLevel:  {Accepted: education, Weight: 0.25},
		QuestionExperienceLevel: {Accepted: experience, Weight: 0.2},
		QuestionWorkEnvironment: {Accepted: environment, Weight: 0.15},
	}
}

var builtIn = []domain.CareerProfile{
	{
		Title: "Data Scientist",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"analyzing_data": 4, "problem_solving": 4, "exploring_ideas": 2},
			vocab.Skills:    {"data_analysis": 4, "technical_programming": 3, "research": 3},
			vocab.WorkStyle: {"independent": 2, "detail_oriented": 3},
			vocab.Values:    {"continuous_learning": 3, "high_earnings": 2},
			vocab.Technical: {"machine_learning": 4, "programming": 3, "databases": 2},
		},
		SimpleCriteria: simple(
			[]string{"advanced", "expert"},
			[]string{"masters", "phd"},
			[]string{"mid", "senior"},
			[]string{"office", "hybrid", "remote"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$95,000 - $165,000",
			GrowthRate:       "Much faster than average (36%)",
			Description:      "Builds statistical and machine-learning models to turn raw data into decisions.",
			ExampleEmployers: []string{"Netflix", "Airbnb", "Spotify"},
			KeySkills:        []string{"Python", "Statistics", "Machine Learning", "SQL"},
		},
	},
	{
		Title: "Software Engineer",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"building_things": 4, "problem_solving": 4},
			vocab.Skills:    {"technical_programming": 4, "design_thinking": 2},
			vocab.WorkStyle: {"collaborative": 3, "detail_oriented": 2, "independent": 2},
			vocab.Values:    {"continuous_learning": 3, "high_earnings": 3},
			vocab.Technical: {"programming": 4, "databases": 3, "cloud_platforms": 2, "automation": 2},
		},
		SimpleCriteria: simple(
			[]string{"intermediate", "advanced", "expert"},
			[]string{"bachelors", "masters"},
			[]string{"entry", "mid", "senior"},
			[]string{"remote", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$85,000 - $160,000",
			GrowthRate:       "Much faster than average (25%)",
			Description:      "Designs, builds, and maintains software systems across the stack.",
			ExampleEmployers: []string{"Google", "Stripe", "Shopify"},
			KeySkills:        []string{"Programming", "System Design", "Testing", "Version Control"},
		},
	},
	{
		Title: "Data Analyst",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"analyzing_data": 4, "organizing_systems": 2, "problem_solving": 3},
			vocab.Skills:    {"data_analysis": 4, "research": 2, "communication": 2},
			vocab.WorkStyle: {"detail_oriented": 4, "structured": 3},
			vocab.Values:    {"stability": 2, "continuous_learning": 2},
			vocab.Technical: {"spreadsheets": 4, "databases": 3, "programming": 1},
		},
		SimpleCriteria: simple(
			[]string{"intermediate", "advanced"},
			[]string{"bachelors", "masters"},
			[]string{"entry", "mid"},
			[]string{"office", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$60,000 - $105,000",
			GrowthRate:       "Faster than average (23%)",
			Description:      "Transforms business data into dashboards, reports, and actionable insight.",
			ExampleEmployers: []string{"Deloitte", "Target", "JPMorgan Chase"},
			KeySkills:        []string{"SQL", "Excel", "Data Visualization", "Reporting"},
		},
	},
	{
		Title: "UX Designer",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"creative_expression": 4, "understanding_people": 4, "building_things": 2},
			vocab.Skills:    {"design_thinking": 4, "research": 3, "communication": 3},
			vocab.WorkStyle: {"collaborative": 3, "flexible": 2, "big_picture": 2},
			vocab.Values:    {"impact": 3, "autonomy": 2},
			vocab.Technical: {"spreadsheets": 1},
		},
		SimpleCriteria: simple(
			[]string{"beginner", "intermediate"},
			[]string{"bachelors"},
			[]string{"entry", "mid"},
			[]string{"hybrid", "remote"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$70,000 - $130,000",
			GrowthRate:       "Faster than average (16%)",
			Description:      "Researches user needs and designs intuitive product experiences.",
			ExampleEmployers: []string{"Figma", "Adobe", "IBM"},
			KeySkills:        []string{"User Research", "Wireframing", "Prototyping", "Visual Design"},
		},
	},
	{
		Title: "Product Manager",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"leading_teams": 3, "problem_solving": 3, "understanding_people": 3},
			vocab.Skills:    {"communication": 4, "project_management": 4, "negotiation": 2, "data_analysis": 2},
			vocab.WorkStyle: {"big_picture": 4, "collaborative": 3, "fast_paced": 2},
			vocab.Values:    {"impact": 4, "recognition": 2},
			vocab.Technical: {"spreadsheets": 2},
		},
		SimpleCriteria: simple(
			[]string{"beginner", "intermediate"},
			[]string{"bachelors", "masters"},
			[]string{"mid", "senior"},
			[]string{"office", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$100,000 - $170,000",
			GrowthRate:       "Faster than average (19%)",
			Description:      "Owns product direction, balancing user needs, business goals, and delivery.",
			ExampleEmployers: []string{"Microsoft", "Atlassian", "Salesforce"},
			KeySkills:        []string{"Roadmapping", "Stakeholder Management", "Prioritization", "Analytics"},
		},
	},
	{
		Title: "DevOps Engineer",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"building_things": 3, "organizing_systems": 4, "problem_solving": 3},
			vocab.Skills:    {"technical_programming": 3, "project_management": 1},
			vocab.WorkStyle: {"structured": 3, "fast_paced": 2, "independent": 2},
			vocab.Values:    {"stability": 2, "high_earnings": 3, "continuous_learning": 2},
			vocab.Technical: {"cloud_platforms": 4, "automation": 4, "networking": 3, "security": 2},
		},
		SimpleCriteria: simple(
			[]string{"advanced", "expert"},
			[]string{"bachelors"},
			[]string{"mid", "senior"},
			[]string{"remote", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$95,000 - $155,000",
			GrowthRate:       "Much faster than average (21%)",
			Description:      "Automates build, deployment, and operations of cloud infrastructure.",
			ExampleEmployers: []string{"Amazon", "HashiCorp", "Datadog"},
			KeySkills:        []string{"CI/CD", "Kubernetes", "Cloud Infrastructure", "Scripting"},
		},
	},
	{
		Title: "Cybersecurity Analyst",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"problem_solving": 4, "analyzing_data": 3, "organizing_systems": 2},
			vocab.Skills:    {"research": 3, "data_analysis": 2, "writing": 1},
			vocab.WorkStyle: {"detail_oriented": 4, "structured": 3},
			vocab.Values:    {"stability": 3, "impact": 2},
			vocab.Technical: {"security": 4, "networking": 4, "automation": 2},
		},
		SimpleCriteria: simple(
			[]string{"intermediate", "advanced", "expert"},
			[]string{"bachelors", "masters"},
			[]string{"entry", "mid", "senior"},
			[]string{"office", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$80,000 - $140,000",
			GrowthRate:       "Much faster than average (33%)",
			Description:      "Monitors, investigates, and hardens systems against security threats.",
			ExampleEmployers: []string{"CrowdStrike", "Cisco", "Booz Allen Hamilton"},
			KeySkills:        []string{"Threat Analysis", "Network Security", "Incident Response", "SIEM"},
		},
	},
	{
		Title: "Technical Writer",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"teaching_others": 4, "organizing_systems": 3, "exploring_ideas": 2},
			vocab.Skills:    {"writing": 4, "research": 3, "communication": 3},
			vocab.WorkStyle: {"independent": 3, "detail_oriented": 3, "structured": 2},
			vocab.Values:    {"autonomy": 3, "work_life_balance": 3},
			vocab.Technical: {"programming": 1, "databases": 1},
		},
		SimpleCriteria: simple(
			[]string{"beginner", "intermediate"},
			[]string{"bachelors"},
			[]string{"entry", "mid"},
			[]string{"remote"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$60,000 - $110,000",
			GrowthRate:       "Average (7%)",
			Description:      "Turns complex technical systems into clear documentation and guides.",
			ExampleEmployers: []string{"GitLab", "Red Hat", "Twilio"},
			KeySkills:        []string{"Writing", "Information Architecture", "Docs-as-Code", "Editing"},
		},
	},
	{
		Title: "Engineering Manager",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"leading_teams": 4, "helping_people": 3, "building_things": 2},
			vocab.Skills:    {"project_management": 4, "communication": 4, "negotiation": 3, "technical_programming": 2},
			vocab.WorkStyle: {"collaborative": 4, "big_picture": 3},
			vocab.Values:    {"impact": 3, "recognition": 2, "high_earnings": 3},
			vocab.Technical: {"programming": 2, "cloud_platforms": 1},
		},
		SimpleCriteria: simple(
			[]string{"advanced", "expert"},
			[]string{"bachelors", "masters"},
			[]string{"senior"},
			[]string{"office", "hybrid"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$140,000 - $210,000",
			GrowthRate:       "Faster than average (10%)",
			Description:      "Leads engineering teams, growing people while keeping delivery on track.",
			ExampleEmployers: []string{"Meta", "Uber", "LinkedIn"},
			KeySkills:        []string{"People Management", "Technical Leadership", "Planning", "Hiring"},
		},
	},
	{
		Title: "Marketing Specialist",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"creative_expression": 3, "understanding_people": 4, "analyzing_data": 2},
			vocab.Skills:    {"communication": 4, "writing": 3, "public_speaking": 2, "data_analysis": 2},
			vocab.WorkStyle: {"fast_paced": 3, "flexible": 3, "collaborative": 2},
			vocab.Values:    {"recognition": 3, "impact": 2},
			vocab.Technical: {"spreadsheets": 2},
		},
		SimpleCriteria: simple(
			[]string{"beginner", "intermediate"},
			[]string{"bachelors"},
			[]string{"entry", "mid"},
			[]string{"office", "hybrid", "remote"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$50,000 - $95,000",
			GrowthRate:       "Faster than average (10%)",
			Description:      "Plans and runs campaigns that connect products with the right audience.",
			ExampleEmployers: []string{"HubSpot", "Nike", "Mailchimp"},
			KeySkills:        []string{"Content Strategy", "Campaign Management", "SEO", "Analytics"},
		},
	},
	{
		Title: "Financial Analyst",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"analyzing_data": 4, "problem_solving": 2, "organizing_systems": 2},
			vocab.Skills:    {"budgeting": 4, "data_analysis": 3, "research": 2},
			vocab.WorkStyle: {"detail_oriented": 4, "structured": 4},
			vocab.Values:    {"high_earnings": 3, "stability": 3},
			vocab.Technical: {"spreadsheets": 4, "databases": 1},
		},
		SimpleCriteria: simple(
			[]string{"intermediate", "advanced"},
			[]string{"bachelors", "masters"},
			[]string{"entry", "mid", "senior"},
			[]string{"office"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$65,000 - $120,000",
			GrowthRate:       "Faster than average (8%)",
			Description:      "Models budgets, forecasts, and investments to guide financial decisions.",
			ExampleEmployers: []string{"Goldman Sachs", "Fidelity", "KPMG"},
			KeySkills:        []string{"Financial Modeling", "Excel", "Forecasting", "Valuation"},
		},
	},
	{
		Title: "Customer Success Manager",
		MatchCriteria: map[string]map[string]int{
			vocab.Interests: {"helping_people": 4, "understanding_people": 4, "teaching_others": 3},
			vocab.Skills:    {"communication": 4, "negotiation": 3, "public_speaking": 2, "project_management": 2},
			vocab.WorkStyle: {"collaborative": 3, "flexible": 3, "fast_paced": 2},
			vocab.Values:    {"impact": 3, "work_life_balance": 2, "stability": 2},
			vocab.Technical: {"spreadsheets": 1},
		},
		SimpleCriteria: simple(
			[]string{"beginner", "intermediate"},
			[]string{"high_school", "bachelors"},
			[]string{"entry", "mid"},
			[]string{"remote", "hybrid", "office"},
		),
		Metadata: domain.CareerMetadata{
			SalaryRange:      "$55,000 - $100,000",
			GrowthRate:       "Faster than average (13%)",
			Description:      "Keeps customers successful after the sale, from onboarding to renewal.",
			ExampleEmployers: []string{"Zendesk", "Salesforce", "Gainsight"},
			KeySkills:        []string{"Relationship Building", "Onboarding", "Account Management", "Communication"},
		},
	},
}
