package models

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Flag   string `json:"flag,omitempty"`
}
