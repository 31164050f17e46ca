package services

// ServiceError - Erreur métier commune à toutes les opérations du module dépistage
type ServiceError struct {
	Type    string                 `json:"type"` // "validation", "not_found", "persistence"
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func newValidationError(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Type:    "validation",
		Code:    "VALIDATION_FAILED",
		Message: message,
		Details: details,
	}
}

func newNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Type:    "not_found",
		Code:    "RECORD_NOT_FOUND",
		Message: "Enregistrement non trouvé",
		Details: map[string]interface{}{"id": id},
	}
}

func newPersistenceError(operation string) *ServiceError {
	return &ServiceError{
		Type:    "persistence",
		Code:    "PERSISTENCE_FAILED",
		Message: "Erreur de connexion à la base de données. Veuillez réessayer.",
		Details: map[string]interface{}{"operation": operation},
	}
}
