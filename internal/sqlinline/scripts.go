package sqlinline

const QUpsertScript = `--sql c0585e51-fd01-47b4-8b60-e2856b700d3b
insert into scripts (id, user_id, title, platform, description, sections, hashtags,
                     thumbnail_suggestion, thumbnail_url, analytics, created_at, last_modified)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
on conflict (id) do update set
    title = excluded.title,
    platform = excluded.platform,
    description = excluded.description,
    sections = excluded.sections,
    hashtags = excluded.hashtags,
    thumbnail_suggestion = excluded.thumbnail_suggestion,
    thumbnail_url = excluded.thumbnail_url,
    analytics = excluded.analytics,
    last_modified = excluded.last_modified
where scripts.user_id = excluded.user_id;
`

const QSelectScript = `--sql 415e4ede-ee1a-48c1-afbb-90b625019630
select id, user_id, title, platform, description, sections, hashtags,
       coalesce(thumbnail_suggestion, ''), coalesce(thumbnail_url, ''), analytics, created_at, last_modified
from scripts
where user_id = $1 and id = $2
limit 1;
`

const QListScriptsByUser = `--sql 56d519a4-b0bb-40ac-b1e8-a060102e6610
select id, user_id, title, platform, description, sections, hashtags,
       coalesce(thumbnail_suggestion, ''), coalesce(thumbnail_url, ''), analytics, created_at, last_modified
from scripts
where user_id = $1
order by last_modified desc, id desc;
`

const QDeleteScript = `--sql a90070d9-a40c-48fc-a4b4-2518014fc1d4
delete from scripts
where user_id = $1 and id = $2;
`
