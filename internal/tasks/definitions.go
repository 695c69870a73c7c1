package tasks

// DefineTasks registers all available tasks
func DefineTasks() {
	// Register general tasks
	RegisterHandler(LogInfoTask.TaskID(), LogInfoTask.HandleExecution)

	// Register meeting schedule tasks
	RegisterHandler(ProcessMeetingScheduleTask.TaskID(), ProcessMeetingScheduleTask.HandleExecution)

	// Register reminder tasks
	RegisterHandler(SendReminderTask.TaskID(), SendReminderTask.HandleExecution)
}
