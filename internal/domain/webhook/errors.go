package webhook

import "errors"

var ErrWebhookNotFound = errors.New("webhook not found")
