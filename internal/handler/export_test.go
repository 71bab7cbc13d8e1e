package handler

// Export for testing
var WriteServiceError = writeServiceError
var ClientID = clientID
