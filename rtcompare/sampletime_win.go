//go:build windows

package rtcompare

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a raw QueryPerformanceCounter reading.
// TimeStamps are only comparable within one run of a program on one machine.
type TimeStamp = int64

var (
	kernel32    = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = kernel32.NewProc("QueryPerformanceFrequency")
	procCounter = kernel32.NewProc("QueryPerformanceCounter")

	ticksPerSecond = queryFrequency()
)

func queryFrequency() int64 {
	var freq int64
	if r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq))); r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// SampleTime returns the current TimeStamp.
func SampleTime() TimeStamp {
	var ticks int64
	procCounter.Call(uintptr(unsafe.Pointer(&ticks)))
	return ticks
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds (negative if the order is reversed).
// It has a constant runtime but contains an integer division.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return (t_later - t_earlier) * 1_000_000_000 / ticksPerSecond
}
