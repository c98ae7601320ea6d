// Package widgets provides the built-in widget set for the joist runtime:
// layout containers (Flex, Stack, Padding, SizedBox), display widgets
// (Label), interactive controls (Button, TextBox), and the Fade effect
// container.
//
// Widgets are retained objects owned by a tree. Construct one, insert it,
// and change it afterwards only through the tree's mutation gateway:
//
//	tr := tree.New(widgets.NewColumn())
//	id, _ := tr.Insert(tr.Root(), widgets.NewButton("Send"))
//	...
//	tr.Mutate(id, func(m *tree.Mutation) error {
//		btn, err := tree.WidgetAs[*widgets.Button](m)
//		if err != nil {
//			return err
//		}
//		btn.SetLabel("Sent")
//		return nil
//	})
//
// Interactive widgets report user activity as actions (ButtonPressed,
// TextChanged) on the tree's action queue rather than through callbacks,
// so application logic runs outside any widget scope.
package widgets
