// Package viewmock is a test double for views bound to observable models.
//
// A View caches the value of each observed field the way a data-bound view
// would display it. The cache only changes when the model announces a change
// through its Notifier, so a test can compare what the view shows with what
// the model holds and catch fields that were mutated without a notification:
//
//	vm := &ViewModel{Name: "Default"}
//	view, err := viewmock.Observe(vm)
//	...
//	vm.Name = "Not Notified"
//	ok, _ := view.IsDisplayedAs("Name", "Not Notified") // false
//	view.LastError() // viewmock.NotNotifiedMessage
//
// Fields are selected by name ("Name"), by Go expression ("vm.Name",
// "string(vm.Name)") or by a typed accessor returning the field's address
// (func(vm *ViewModel) *string { return &vm.Name }).
//
// ObservePartial starts with no observed field; fields are added with
// Builder.WithField.
package viewmock
