// Package screens contains overlay flows rendered on top of the active tab.
//
// Screens satisfy core.Screen and receive keys before the shell does. They
// never own routing tables or the key registry; both are passed in.
package screens
