package constants

// Approval status (persisted as strings).
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// Visibility (API-level, derived per viewer at read time, never persisted).
const (
	VisibilityPublic   = "PUBLIC"
	VisibilityPrivate  = "PRIVATE"
	VisibilityEnrolled = "ENROLLED"
)

// Material target audience.
const (
	AudienceStudents = "STUDENTS"
	AudienceTutors   = "TUTORS"
	AudienceBoth     = "BOTH"
)

// Enrollment status.
const (
	EnrollmentActive  = "ACTIVE"
	EnrollmentDropped = "DROPPED"
)

// Attendance session status chain. Advanced strictly one step at a time.
const (
	SessionScheduled       = "SCHEDULED"
	SessionIdentifyingEntry = "IDENTIFYING_ENTRY"
	SessionInProgress      = "IN_PROGRESS"
	SessionIdentifyingExit = "IDENTIFYING_EXIT"
	SessionCompleted       = "COMPLETED"
)

// CRM lead pipeline.
const (
	LeadNew       = "NEW"
	LeadContacted = "CONTACTED"
	LeadQualified = "QUALIFIED"
	LeadConverted = "CONVERTED"
	LeadLost      = "LOST"
)

// Subscription status.
const (
	SubscriptionPendingPayment = "PENDING_PAYMENT"
	SubscriptionActive         = "ACTIVE"
	SubscriptionPastDue        = "PAST_DUE"
	SubscriptionCanceled       = "CANCELED"
	SubscriptionExpired        = "EXPIRED"
)
