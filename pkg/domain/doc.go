// Package domain contains the value types shared by the generator, the
// session and the front-ends: the options a user picks, the passwords that
// come out and their scores. They carry no behavior beyond normalization so
// any package can depend on them.
package domain
