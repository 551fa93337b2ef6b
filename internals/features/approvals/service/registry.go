package service

// contentKind describes one moderatable table: where it lives, the column
// prefix its schema uses, and how it points back at courses for context
// enrichment. The registry is closed; anything else is INVALID_TYPE.
type contentKind struct {
	Table     string
	Prefix    string
	TitleCol  string
	CourseCol string // FK column to courses; "" means the row is a course itself
}

var contentKinds = map[string]contentKind{
	"course": {
		Table:    "courses",
		Prefix:   "course",
		TitleCol: "course_title",
	},
	"lesson": {
		Table:     "lessons",
		Prefix:    "lesson",
		TitleCol:  "lesson_title",
		CourseCol: "lesson_course_id",
	},
	"material": {
		Table:     "course_materials",
		Prefix:    "course_material",
		TitleCol:  "course_material_title",
		CourseCol: "course_material_course_id",
	},
	"assignment": {
		Table:     "assignments",
		Prefix:    "assignment",
		TitleCol:  "assignment_title",
		CourseCol: "assignment_course_id",
	},
	"quiz": {
		Table:     "quizzes",
		Prefix:    "quiz",
		TitleCol:  "quiz_title",
		CourseCol: "quiz_course_id",
	},
	"batch": {
		Table:     "batches",
		Prefix:    "batch",
		TitleCol:  "batch_name",
		CourseCol: "batch_course_id",
	},
	"live_class": {
		Table:     "live_classes",
		Prefix:    "live_class",
		TitleCol:  "live_class_title",
		CourseCol: "live_class_course_id",
	},
	"attendance_session": {
		Table:     "attendance_sessions",
		Prefix:    "attendance_session",
		TitleCol:  "attendance_session_title",
		CourseCol: "attendance_session_course_id",
	},
}

// kindOrder fixes the aggregate ordering of GetPendingItems so the response
// stays deterministic despite the concurrent fan-out.
var kindOrder = []string{
	"course",
	"lesson",
	"material",
	"assignment",
	"quiz",
	"batch",
	"live_class",
	"attendance_session",
}
