// internal/interp/mock_gen.go
package interp

//go:generate mockgen -typed -source=./prompter.go -destination=../mocks/mock_prompter.go -package=mocks Prompter
