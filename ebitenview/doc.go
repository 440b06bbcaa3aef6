// Package ebitenview renders a [panzoom.Viewport] with ebiten and maps mouse
// and keyboard input onto it.
//
// Input mapping:
//
//   - wheel: pan by -wheel*WheelPixels
//   - Ctrl/Cmd + wheel: zoom around the cursor
//   - left drag: pan, content follows the pointer
//   - double-click on the image: add a marker
//   - click on a marker dot: remove it
//   - R: reset the view
//
// Real input is polled only while an [InputHandle] from [Viewer.Activate] is
// held and the window has focus. Synthetic input (InjectZoom, InjectPan,
// InjectClick, ...) and JSON test scripts ([LoadTestScript]) go through the
// same handlers, one frame at a time.
package ebitenview
