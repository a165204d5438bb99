package models

// Analytics is the derived dashboard summary computed on demand over the
// students table. It is never stored; every read reflects the rows that
// exist at query time.
type Analytics struct {
	// TotalStudents is the count of all student rows.
	TotalStudents int `json:"totalStudents"`

	// AverageGradeBySubject maps each subject with at least one student to
	// its mean grade, rounded to two decimal places. Subjects with zero
	// students are absent from the map, never reported as zero.
	AverageGradeBySubject map[string]float64 `json:"averageGradeBySubject"`

	// RecentAdditions holds the ten most recently created students,
	// newest first.
	RecentAdditions []Student `json:"recentAdditions"`
}
