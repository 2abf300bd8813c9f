package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/backingstore"
	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mmu"
	"github.com/sarchlab/vmsim/monitoring"
)

// reportWriter prints one record per completed translation, in the
// order the addresses arrive.
type reportWriter struct {
	out io.Writer
}

func (w *reportWriter) TranslationDone(t mmu.Translation) {
	fmt.Fprintf(w.out,
		"logical address : %d  physical address : %d  value : %d\n",
		t.LogicalAddress, t.PhysicalAddress, t.Value)
}

// recorderListener stores every completed translation into the run
// database.
type recorderListener struct {
	recorder datarecording.DataRecorder
}

func (l *recorderListener) TranslationDone(t mmu.Translation) {
	l.recorder.InsertData("translations", t)
}

type runSummary struct {
	PageFaults uint64
	TLBHits    uint64
}

// parseAddress parses one address-file line. Parsing is strict: the
// whole line must be a decimal unsigned integer. This diverges from
// the lenient atoi conversion of the classic C implementation, which
// silently turned garbage lines into address 0.
func parseAddress(line string) (uint64, error) {
	addr, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed address %q", line)
	}

	return addr, nil
}

func run(cmd *cobra.Command, args []string) error {
	storePath, addrPath := args[0], args[1]

	store, err := backingstore.Open(storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	addrFile, err := os.Open(addrPath)
	if err != nil {
		return fmt.Errorf("cannot open address file: %w", err)
	}
	defer addrFile.Close()

	translator := mmu.MakeBuilder().
		WithPageSource(store).
		Build("MMU")

	out := cmd.OutOrStdout()
	translator.RegisterListener(&reportWriter{out: out})

	var recorder datarecording.DataRecorder
	if flagRecord || flagRecordDB != "" {
		dbPath := flagRecordDB
		if dbPath == "" {
			dbPath = os.Getenv("VMSIM_RECORD_DB")
		}

		recorder = datarecording.NewDataRecorder(dbPath)
		recorder.CreateTable("translations", mmu.Translation{})
		recorder.CreateTable("run_summary", runSummary{})
		translator.RegisterListener(&recorderListener{recorder: recorder})
	}

	if flagMonitor {
		monitor := monitoring.NewMonitor().WithPortNumber(flagMonitorPort)
		monitor.RegisterTranslator(translator)
		monitor.StartServer()

		if flagOpenDashboard {
			monitor.OpenDashboard()
		}
	}

	runErr := translateStream(addrFile, translator)

	stats := translator.Stats()
	fmt.Fprintf(out, "Page Faults : %d\n", stats.PageFaults)
	fmt.Fprintf(out, "TLB hits : %d\n", stats.TLBHits)

	if recorder != nil {
		recorder.InsertData("run_summary", runSummary{
			PageFaults: stats.PageFaults,
			TLBHits:    stats.TLBHits,
		})
		recorder.Flush()
	}

	return runErr
}

// translateStream consumes the address file line by line, strictly in
// order. Malformed lines and backing-store failures skip only the
// offending address; frame exhaustion ends the run, since every
// following fault would fail the same way.
func translateStream(addrFile io.Reader, translator *mmu.Comp) error {
	scanner := bufio.NewScanner(addrFile)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		addr, err := parseAddress(line)
		if err != nil {
			log.Printf("line %d: %v, skipping", lineNumber, err)
			continue
		}

		_, err = translator.Translate(addr)
		if err == nil {
			continue
		}

		var fault *mmu.Fault
		if errors.As(err, &fault) && fault.Kind == mmu.FaultFrameExhausted {
			log.Printf("line %d: address %d: %v, ending run",
				lineNumber, addr, err)
			return err
		}

		log.Printf("line %d: address %d: %v, skipping", lineNumber, addr, err)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read address file: %w", err)
	}

	return nil
}
