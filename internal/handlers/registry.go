package handlers

// AppHandlers bundles every HTTP handler the router mounts.
type AppHandlers struct {
	Designer *DesignerHandler
	Consumer *ConsumerHandler
	JobPost  *JobPostHandler
	Post     *PostHandler
}
