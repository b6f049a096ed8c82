package handlers

// HandlerBundle collects the assembled handlers so route registration takes
// a single dependency.
type HandlerBundle struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Calendar  *CalendarHandler
	Scheduler *SchedulerHandler
	Chat      *ChatHandler
	Vision    *VisionHandler
}
