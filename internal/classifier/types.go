package classifier

// Kind is the task category of a directive.
type Kind string

const (
	KindExit          Kind = "exit"
	KindGeneral       Kind = "general"
	KindRealtime      Kind = "realtime"
	KindOpen          Kind = "open"
	KindClose         Kind = "close"
	KindPlay          Kind = "play"
	KindGenerateImage Kind = "generate_image"
	KindSystem        Kind = "system"
	KindContent       Kind = "content"
	KindGoogleSearch  Kind = "google_search"
	KindYoutubeSearch Kind = "youtube_search"
	KindReminder      Kind = "reminder"
)

// Directive is one classified sub-task of an utterance.
type Directive struct {
	Kind     Kind
	Argument string
}

// String renders the directive the way the model writes it.
func (d Directive) String() string {
	kw := string(d.Kind)
	for _, v := range vocabulary {
		if v.kind == d.Kind {
			kw = v.keyword
			break
		}
	}
	if d.Argument == "" {
		return kw
	}
	return kw + " " + d.Argument
}

type vocabularyEntry struct {
	keyword string
	kind    Kind
}

// vocabulary is scanned in order and the first keyword that prefixes a
// fragment wins. The order is part of the contract.
var vocabulary = []vocabularyEntry{
	{"exit", KindExit},
	{"general", KindGeneral},
	{"realtime", KindRealtime},
	{"open", KindOpen},
	{"close", KindClose},
	{"play", KindPlay},
	{"generate image", KindGenerateImage},
	{"system", KindSystem},
	{"content", KindContent},
	{"google search", KindGoogleSearch},
	{"youtube search", KindYoutubeSearch},
	{"reminder", KindReminder},
}
