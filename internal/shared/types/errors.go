package types

import "errors"

var (
	ErrNoControllerURL    = errors.New("no controller URL configured. Use --controller or the config file")
	ErrNoCredentials      = errors.New("controller username and password are required")
	ErrNoSitesSelected    = errors.New("at least one site must be selected")
	ErrInvalidServiceSpec = errors.New("invalid service specification")
	ErrInvalidSiteConfig  = errors.New("invalid site deployment configuration")
	ErrHistoryDisabled    = errors.New("run history is disabled")
)
