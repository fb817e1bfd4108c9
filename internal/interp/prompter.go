package interp

import "context"

// Prompter supplies input for BEG. Prompt blocks until the user answers;
// cancellation is reported by returning ErrInputCancelled (or io.EOF, or the
// context's error).
type Prompter interface {
	Prompt(ctx context.Context, name string) (string, error)
}

// PrompterFunc adapts a function into a Prompter.
type PrompterFunc func(ctx context.Context, name string) (string, error)

// Prompt calls f.
func (f PrompterFunc) Prompt(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Answers returns a Prompter that replays canned input, then cancels.
func Answers(answers ...string) Prompter {
	return PrompterFunc(func(ctx context.Context, name string) (string, error) {
		if len(answers) == 0 {
			return "", ErrInputCancelled
		}
		ans := answers[0]
		answers = answers[1:]
		return ans, nil
	})
}
