package sheets

// Wire types for the spreadsheet values API.

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

type spreadsheetMeta struct {
	Sheets []sheetMeta `json:"sheets"`
}

type sheetMeta struct {
	Properties sheetProperties `json:"properties"`
}

type batchUpdateRequest struct {
	Requests []request `json:"requests"`
}

type request struct {
	AddSheet *addSheetRequest `json:"addSheet,omitempty"`
}

type addSheetRequest struct {
	Properties sheetProperties `json:"properties"`
}

type sheetProperties struct {
	Title string `json:"title"`
}
