package metrics

// RecordArticleCreated records an article creation with its initial state.
func RecordArticleCreated(published bool) {
	state := "draft"
	if published {
		state = "published"
	}
	ArticlesCreatedTotal.WithLabelValues(state).Inc()
}

// RecordArticlesDeleted records n article deletions.
func RecordArticlesDeleted(n int) {
	ArticlesDeletedTotal.Add(float64(n))
}

// RecordEngagement records one engagement event.
// Kind is "like", "bookmark", or "comment"; action is "added" or "removed".
func RecordEngagement(kind string, added bool) {
	action := "removed"
	if added {
		action = "added"
	}
	EngagementEventsTotal.WithLabelValues(kind, action).Inc()
}

// RecordImageUpload records an image upload attempt against one backend.
func RecordImageUpload(backend string, success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	ImageUploadsTotal.WithLabelValues(backend, status).Inc()
}

// RecordAuthRequest records an authentication attempt.
// Operation is "register" or "login".
func RecordAuthRequest(operation string, success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	AuthRequestsTotal.WithLabelValues(operation, status).Inc()
}
