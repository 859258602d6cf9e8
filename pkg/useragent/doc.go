// Package useragent parses HTTP User-Agent strings into the device, browser and
// operating system labels stored on traffic records, and carries the bot
// signature database consulted first by the bot classifier.
//
// Parsing uses plain substring look-ups over ordered rule tables plus a few
// pre-compiled regular expressions for version extraction. Table order is the
// detection priority: the first matching rule wins.
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil && !errors.Is(err, useragent.ErrUnknownDevice) {
//	    // ua still holds whatever could be detected
//	}
//	info := ua.Info() // {DeviceType, Browser, OS}
//
// MatchBot looks a user agent up in the signature table and returns the bot
// name and category:
//
//	if bot, ok := useragent.MatchBot(uaString); ok {
//	    log.Printf("%s (%s)", bot.Name, bot.Category)
//	}
//
// Parse errors are informational. ErrEmptyUserAgent, ErrUnknownDevice and
// ErrMalformedUserAgent are returned together with a best-effort UserAgent.
package useragent
