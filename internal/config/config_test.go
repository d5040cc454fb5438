// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pideck/pideck/internal/config"
)

var _ = Describe("Load", func() {
	It("should return defaults for an empty path", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("should overlay file values onto the defaults", func() {
		path := filepath.Join(GinkgoT().TempDir(), "pideck.yaml")
		Expect(os.WriteFile(path, []byte("address: \":9000\"\nsnapshotTTL: 10s\nallowPowerControl: true\n"), 0o600)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Address).To(Equal(":9000"))
		Expect(cfg.SnapshotTTL).To(Equal(config.Duration(10 * time.Second)))
		Expect(cfg.AllowPowerControl).To(BeTrue())
		// Untouched fields keep their defaults.
		Expect(cfg.WifiInterface).To(Equal("wlan0"))
		Expect(cfg.TopProcesses).To(Equal(50))
	})

	It("should fail for a missing file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail for malformed YAML", func() {
		path := filepath.Join(GinkgoT().TempDir(), "broken.yaml")
		Expect(os.WriteFile(path, []byte("address: [\n"), 0o600)).To(Succeed())
		_, err := config.Load(path)
		Expect(err).To(HaveOccurred())
	})

	It("should reject an empty listen address", func() {
		path := filepath.Join(GinkgoT().TempDir(), "pideck.yaml")
		Expect(os.WriteFile(path, []byte("address: \"\"\n"), 0o600)).To(Succeed())
		_, err := config.Load(path)
		Expect(err).To(MatchError(ContainSubstring("address")))
	})
})
