// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package collector

import "github.com/go-logr/logr"

func newLinkData(_ logr.Logger) (LinkData, func()) {
	return noopLinkData{}, func() {}
}
