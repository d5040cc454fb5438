// SPDX-FileCopyrightText: 2025 The pideck authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pideck/pideck/internal/api/info"
)

var _ = Describe("pideckctl board", func() {
	var (
		apiServer *httptest.Server
		board     info.Board
	)

	BeforeEach(func() {
		board = info.Board{
			Model:              "Raspberry Pi 4 Model B Rev 1.1",
			ModelName:          "4 Model B",
			Revision:           "1.1",
			RAMMB:              4096,
			Manufacturer:       "Sony UK",
			Processor:          "BCM2711",
			RevisionCode:       "b03111",
			Scheme:             "new",
			Serial:             "100000002fa3b8c1",
			OvervoltageAllowed: true,
		}
		apiServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/api/v1/board"))
			w.Header().Set("Content-Type", "application/json")
			Expect(json.NewEncoder(w).Encode(board)).To(Succeed())
		}))
		DeferCleanup(apiServer.Close)
	})

	runBoard := func(args ...string) string {
		root := NewCommand()
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetErr(out)
		root.SetArgs(append([]string{"board", "--server", apiServer.URL}, args...))
		Expect(root.Execute()).To(Succeed())
		return out.String()
	}

	It("should print the decoded board identity", func() {
		output := runBoard()
		Expect(output).To(ContainSubstring("Raspberry Pi 4 Model B rev 1.1, 4096 MB RAM"))
		Expect(output).To(ContainSubstring("Processor:     BCM2711"))
		Expect(output).To(ContainSubstring("Revision code: b03111 (new scheme)"))
		Expect(output).To(ContainSubstring("overvoltage allowed"))
	})

	It("should print raw JSON with --json", func() {
		output := runBoard("--json")
		var decoded info.Board
		Expect(json.Unmarshal([]byte(output), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(board))
	})

	It("should surface API errors", func() {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "collector unavailable", http.StatusInternalServerError)
		}))
		DeferCleanup(failing.Close)

		root := NewCommand()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"board", "--server", failing.URL})
		err := root.Execute()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("collector unavailable"))
	})
})
