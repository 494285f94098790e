package errors

// NewHTTPError classifies a non-2xx response from the remote store.
func NewHTTPError(op Op, statusCode int, body string) *ClassifiedError {
	return &ClassifiedError{
		Op:         op,
		Category:   httpCategory(statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewNetworkError classifies a transport-level failure. Network errors are
// always recoverable: they may be transient.
func NewNetworkError(op Op, err error) *ClassifiedError {
	return &ClassifiedError{
		Op:         op,
		Category:   Recoverable,
		Underlying: err,
	}
}

func httpCategory(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429: // timeout and throttling can be retried
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}
