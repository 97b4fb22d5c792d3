// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows

package screen

import (
	"fmt"
	"image"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

// System reads display geometry from the operating system.
type System struct{}

var _ Source = System{}

type rect struct {
	left, top, right, bottom int32
}

type point struct {
	x, y int32
}

type monitorInfo struct {
	cbSize   uint32
	monitor  rect
	workArea rect
	flags    uint32
}

var (
	user32             = syscall.NewLazySystemDLL("user32.dll")
	_GetCursorPos      = user32.NewProc("GetCursorPos")
	_GetMonitorInfo    = user32.NewProc("GetMonitorInfoW")
	_GetWindowRect     = user32.NewProc("GetWindowRect")
	_IsWindow          = user32.NewProc("IsWindow")
	_MonitorFromPoint  = user32.NewProc("MonitorFromPoint")
	_MonitorFromWindow = user32.NewProc("MonitorFromWindow")
)

const _MONITOR_DEFAULTTONEAREST = 2

func (System) WorkingAreaForWindow(handle uintptr) (image.Rectangle, error) {
	if r, _, _ := _IsWindow.Call(handle); r == 0 {
		return image.Rectangle{}, ErrNoWindow
	}
	hmon, _, _ := _MonitorFromWindow.Call(handle, _MONITOR_DEFAULTTONEAREST)
	return workArea(hmon)
}

func (System) WorkingAreaAtCursor() (image.Rectangle, error) {
	var p point
	if r, _, err := _GetCursorPos.Call(uintptr(unsafe.Pointer(&p))); r == 0 {
		return image.Rectangle{}, fmt.Errorf("screen: GetCursorPos: %v", err)
	}
	// MonitorFromPoint takes a POINT by value, packed into one word.
	pt := uintptr(uint32(p.x)) | uintptr(uint32(p.y))<<32
	hmon, _, _ := _MonitorFromPoint.Call(pt, _MONITOR_DEFAULTTONEAREST)
	return workArea(hmon)
}

func (System) WindowRect(handle uintptr) (image.Rectangle, error) {
	if r, _, _ := _IsWindow.Call(handle); r == 0 {
		return image.Rectangle{}, ErrNoWindow
	}
	var wr rect
	if r, _, err := _GetWindowRect.Call(handle, uintptr(unsafe.Pointer(&wr))); r == 0 {
		return image.Rectangle{}, fmt.Errorf("screen: GetWindowRect: %v", err)
	}
	return toRect(wr), nil
}

func workArea(hmon uintptr) (image.Rectangle, error) {
	mi := monitorInfo{
		cbSize: uint32(unsafe.Sizeof(monitorInfo{})),
	}
	if r, _, err := _GetMonitorInfo.Call(hmon, uintptr(unsafe.Pointer(&mi))); r == 0 {
		return image.Rectangle{}, fmt.Errorf("screen: GetMonitorInfoW: %v", err)
	}
	return toRect(mi.workArea), nil
}

func toRect(r rect) image.Rectangle {
	return image.Rect(int(r.left), int(r.top), int(r.right), int(r.bottom))
}
