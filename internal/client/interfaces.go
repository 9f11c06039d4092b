// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the application.
type UI interface {
	// Run blocks until the user quits or ctx is done.
	Run(ctx context.Context) error
}

// Workers is the set of background jobs that live as long as the UI.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}
