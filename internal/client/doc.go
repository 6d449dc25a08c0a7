// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It establishes a session, registers the message handler and hands the
// process over to the sync loop. Run never returns nil: the sync loop only
// ends on a fatal error or on cancellation.
package client
