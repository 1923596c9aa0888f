package telephony

import (
	"bytes"
	"encoding/xml"
)

// Minimal TwiML builder. It intentionally avoids any provider SDK dependency;
// only the verbs this assistant actually speaks are modeled.

const (
	defaultVoice    = "alice"
	defaultLanguage = "en-US"

	// holdMusicURL keeps the caller entertained while staff picks up.
	holdMusicURL = "http://twimlets.com/holdmusic?Bucket=com.twilio.music.classical"
)

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any    `xml:",any"`
}

type twimlSay struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr,omitempty"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

type twimlGather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr"`
	Action        string   `xml:"action,attr"`
	Method        string   `xml:"method,attr"`
	SpeechTimeout string   `xml:"speechTimeout,attr,omitempty"`
}

type twimlPause struct {
	XMLName xml.Name `xml:"Pause"`
	Length  int      `xml:"length,attr,omitempty"`
}

type twimlHangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

type twimlDial struct {
	XMLName    xml.Name         `xml:"Dial"`
	Conference *twimlConference `xml:"Conference,omitempty"`
}

type twimlConference struct {
	WaitURL string `xml:"waitUrl,attr,omitempty"`
	Name    string `xml:",chardata"`
}

// VoiceResponse accumulates TwiML verbs in order.
type VoiceResponse struct {
	verbs []any
	voice string
}

func NewVoiceResponse() *VoiceResponse {
	return &VoiceResponse{voice: defaultVoice}
}

// WithVoice overrides the TTS voice for subsequent Say verbs.
func (r *VoiceResponse) WithVoice(voice string) *VoiceResponse {
	if voice != "" {
		r.voice = voice
	}
	return r
}

func (r *VoiceResponse) Say(text string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlSay{Voice: r.voice, Language: defaultLanguage, Text: text})
	return r
}

// GatherSpeech asks the caller to speak and posts the transcript to action.
func (r *VoiceResponse) GatherSpeech(action string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlGather{
		Input:         "speech",
		Action:        action,
		Method:        "POST",
		SpeechTimeout: "5",
	})
	return r
}

func (r *VoiceResponse) Pause(seconds int) *VoiceResponse {
	r.verbs = append(r.verbs, twimlPause{Length: seconds})
	return r
}

func (r *VoiceResponse) Hangup() *VoiceResponse {
	r.verbs = append(r.verbs, twimlHangup{})
	return r
}

// DialConference drops the call into a named conference with hold music.
func (r *VoiceResponse) DialConference(name string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlDial{Conference: &twimlConference{Name: name, WaitURL: holdMusicURL}})
	return r
}

// DialConferenceNoWait joins a conference without hold music (staff leg).
func (r *VoiceResponse) DialConferenceNoWait(name string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlDial{Conference: &twimlConference{Name: name}})
	return r
}

// Render serializes the accumulated verbs to an XML document.
func (r *VoiceResponse) Render() (string, error) {
	doc := twimlResponse{Verbs: r.verbs}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
