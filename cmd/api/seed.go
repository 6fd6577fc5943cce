package main

import "leadership-academy-go/internal/store"

// seedCourses loads the starter catalog. State is process-lifetime only, so
// a fresh process always begins with these three.
func seedCourses(st store.Store) {
	samples := []store.CourseFields{
		{
			Title:       "Executive Leadership Development",
			Description: "Comprehensive 6-month program for senior executives",
			Duration:    "6 months",
			Format:      "Hybrid",
			Price:       "$2,400",
			Category:    "Executive",
		},
		{
			Title:       "Women in Leadership Bootcamp",
			Description: "Intensive 3-month bootcamp for emerging women leaders",
			Duration:    "3 months",
			Format:      "Online",
			Price:       "$1,200",
			Category:    "Leadership",
		},
		{
			Title:       "Personal Branding Program",
			Description: "Build your professional brand and communication skills",
			Duration:    "3 months",
			Format:      "Hybrid",
			Price:       "$800",
			Category:    "Branding",
		},
	}

	for _, fields := range samples {
		st.AddCourse(fields)
	}
}
