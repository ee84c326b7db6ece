// Package floatlabel provides a floating-label text input for Bubble Tea programs.
//
// Core pieces:
//   - Input: the widget. Holds the value store, the activation state and the imperative
//     control surface (Focus, Blur, Clear, IsFocused).
//   - Surface: the text-entry surface the widget drives. TextSurface adapts bubbles/textinput.
//   - Animator: the capability that moves the label between its inactive (0) and
//     active (1) positions. Driver is the default tea.Tick based implementation.
//
// The activation state is Active while the input is focused or holds a value. A value
// pushed by the owner through SetValue only moves the label while the input is not
// focused, so an owner update never fights the user's own focus transition.
package floatlabel
