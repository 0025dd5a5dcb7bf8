// Standup summarizes your recent git commits into a short standup update.
//
// It resolves a time window from a day token, pulls your commits from git
// log, and asks OpenAI's chat-completion API to merge them into a few
// past-tense bullet points.
//
// Usage:
//
//	standup                          # everything since yesterday evening
//	standup day^1                    # all of yesterday
//	standup day^3 "release week"     # three days ago, with a steering hint
//	standup --print-range day^2      # preview the window, no API call
//	standup doctor                   # validate OPENAI_API_KEY
//	standup config init              # write a default config file
//
// See https://github.com/dshills/standup for full documentation.
package main
