package faq

import apperrors "github.com/yanqian/faqbot/pkg/errors"

const (
	// CodeConfiguration marks fatal startup problems: a missing, malformed or
	// empty corpus, or a corpus that yields no vocabulary.
	CodeConfiguration = "configuration_error"
	// CodeInvalidInput marks caller-side validation failures.
	CodeInvalidInput = "invalid_input"
	// CodeFeedback marks feedback sink failures.
	CodeFeedback = "feedback_error"
)

// ConfigurationError wraps err with CodeConfiguration.
func ConfigurationError(message string, err error) error {
	return apperrors.Wrap(CodeConfiguration, message, err)
}

// IsConfigurationError reports whether err must prevent the service from starting.
func IsConfigurationError(err error) bool {
	return apperrors.IsCode(err, CodeConfiguration)
}
