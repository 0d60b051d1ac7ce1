package presentation

const (
	IDParam     = "id"
	FileField   = "file"
	TitleField  = "title"
	AltField    = "alt"
	IDsQuery    = "ids"
	KindQuery   = "kind"
	SinceQuery  = "since"
	UntilQuery  = "until"
	TypeKey     = "Content-Type"
)
